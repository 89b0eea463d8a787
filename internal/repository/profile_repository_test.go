package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProfileRepositoryFindByID(t *testing.T) {
	db := testutil.PrepareDB(t)
	require.NoError(t, db.Create(&model.Profile{ID: "alice", IsVIP: true}).Error)
	repo := NewProfileRepository(db)

	p, err := repo.FindByID(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, p.IsVIP)

	_, err = repo.FindByID(context.Background(), "nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
