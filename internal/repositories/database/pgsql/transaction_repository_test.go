package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListTransactionsQuery_FirstPage(t *testing.T) {
	query, args, err := buildListTransactionsQuery("agent-1", domain.TransactionFilter{Limit: 10})

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE agent_id = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC, transaction_id DESC LIMIT $2")
	assert.NotContains(t, query, "status =")
	assert.Equal(t, []any{"agent-1", 11}, args)
}

func TestBuildListTransactionsQuery_StatusAndCursor(t *testing.T) {
	status := domain.StatusCompleted
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	token := pagination.EncodeToken(at, "txn-9")

	query, args, err := buildListTransactionsQuery("agent-1", domain.TransactionFilter{
		Status: &status, Limit: 5, NextToken: token,
	})

	require.NoError(t, err)
	assert.Contains(t, query, "AND status = $2")
	assert.Contains(t, query, "AND (created_at, transaction_id) < ($3, $4)")
	assert.Contains(t, query, "LIMIT $5")
	require.Len(t, args, 5)
	assert.Equal(t, "COMPLETED", args[1])
	assert.True(t, at.Equal(args[2].(time.Time)))
	assert.Equal(t, "txn-9", args[3])
	assert.Equal(t, 6, args[4])
}

func TestBuildListTransactionsQuery_BadToken(t *testing.T) {
	_, _, err := buildListTransactionsQuery("agent-1", domain.TransactionFilter{NextToken: "%%%"})

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, apperrors.FieldsOf(err), "nextToken")
}

func TestBuildListTransactionsQuery_DefaultLimit(t *testing.T) {
	_, args, err := buildListTransactionsQuery("agent-1", domain.TransactionFilter{})

	require.NoError(t, err)
	assert.Equal(t, 21, args[len(args)-1])
}
