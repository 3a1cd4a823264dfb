package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/internal/testdb"
	"github.com/cppla/qaserver/models"
)

var (
	questions = NewQuestionRepository()
	answers   = NewAnswerRepository()
	users     = NewUserRepository()
)

func mustUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u, err := users.Create(db, uuid.New(), "alice", email, "hash")
	require.NoError(t, err)
	return u
}

func mustQuestion(t *testing.T, db *gorm.DB, text string) *models.Question {
	t.Helper()
	q, err := questions.Create(db, text)
	require.NoError(t, err)
	return q
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		offset, limit int
		want          Page
	}{
		{"defaults kept", 0, 10, Page{0, 10}},
		{"negative offset", -5, 10, Page{0, 10}},
		{"limit above max", 3, 1000, Page{3, MaxLimit}},
		{"zero limit", 0, 0, Page{0, 1}},
		{"negative limit", 0, -7, Page{0, 1}},
		{"limit at max", 0, 100, Page{0, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.offset, tt.limit))
		})
	}
}

func TestQuestionCreateAndGet(t *testing.T) {
	db := testdb.New(t)

	first := mustQuestion(t, db, "Q1")
	second := mustQuestion(t, db, "Q2")

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))

	got, err := questions.GetByID(db, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Q1", got.Text)

	missing, err := questions.GetByID(db, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuestionGetAllClampsAndCountsEverything(t *testing.T) {
	db := testdb.New(t)
	for _, text := range []string{"a", "b", "c"} {
		mustQuestion(t, db, text)
	}

	items, total, err := questions.GetAll(db, -10, 1000)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.EqualValues(t, 3, total)

	items, total, err = questions.GetAll(db, 1, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Text)
	assert.EqualValues(t, 3, total)

	items, total, err = questions.GetAll(db, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.EqualValues(t, 3, total)
}

func TestQuestionDeleteCascadesToAnswers(t *testing.T) {
	db := testdb.New(t)
	user := mustUser(t, db, "a@example.com")
	q := mustQuestion(t, db, "Q")
	other := mustQuestion(t, db, "other")

	var ids []int64
	for i := 0; i < 3; i++ {
		a, err := answers.Create(db, q.ID, user.ID, "A")
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}
	kept, err := answers.Create(db, other.ID, user.ID, "stays")
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return questions.Delete(tx, q)
	})
	require.NoError(t, err)

	for _, id := range ids {
		a, err := answers.GetByID(db, id)
		require.NoError(t, err)
		assert.Nil(t, a, "answer %d should be gone", id)
	}
	a, err := answers.GetByID(db, kept.ID)
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestQuestionDeleteTwiceIsNotFound(t *testing.T) {
	db := testdb.New(t)
	q := mustQuestion(t, db, "Q")

	require.NoError(t, questions.Delete(db, q))
	err := questions.Delete(db, q)
	assert.True(t, errorz.Is(err, errorz.KindNotFound))
}

func TestAnswerCreateForMissingQuestionIsNotFound(t *testing.T) {
	db := testdb.New(t)
	user := mustUser(t, db, "a@example.com")

	_, err := answers.Create(db, 9999, user.ID, "A1")
	require.Error(t, err)
	assert.Equal(t, errorz.KindNotFound, errorz.KindOf(err))

	var n int64
	require.NoError(t, db.Model(&models.Answer{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAnswerCreateForMissingUserIsConflict(t *testing.T) {
	db := testdb.New(t)
	q := mustQuestion(t, db, "Q")

	_, err := answers.Create(db, q.ID, uuid.New(), "A1")
	require.Error(t, err)
	assert.Equal(t, errorz.KindConflict, errorz.KindOf(err))
}

func TestAnswersByQuestionPaginates(t *testing.T) {
	db := testdb.New(t)
	user := mustUser(t, db, "a@example.com")
	q := mustQuestion(t, db, "Q")
	other := mustQuestion(t, db, "other")
	for i := 0; i < 5; i++ {
		_, err := answers.Create(db, q.ID, user.ID, "A")
		require.NoError(t, err)
	}
	_, err := answers.Create(db, other.ID, user.ID, "elsewhere")
	require.NoError(t, err)

	items, total, err := answers.GetByQuestionID(db, q.ID, 3, 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.EqualValues(t, 5, total)
	for _, a := range items {
		assert.Equal(t, q.ID, a.QuestionID)
	}
}

func TestUserDeleteWithAnswersIsRestricted(t *testing.T) {
	db := testdb.New(t)
	user := mustUser(t, db, "a@example.com")
	q := mustQuestion(t, db, "Q")
	a, err := answers.Create(db, q.ID, user.ID, "A")
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return users.Delete(tx, user)
	})
	require.Error(t, err)
	assert.Equal(t, errorz.KindConflict, errorz.KindOf(err))
	assert.Contains(t, err.Error(), "still has answers")

	stillUser, err := users.GetByID(db, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillUser)
	stillAnswer, err := answers.GetByID(db, a.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillAnswer)
}

func TestInspectSQLiteRestrictedDelete(t *testing.T) {
	db := testdb.New(t)
	user := mustUser(t, db, "a@example.com")
	q := mustQuestion(t, db, "Q")
	_, err := answers.Create(db, q.ID, user.ID, "A")
	require.NoError(t, err)

	raw := db.Where("id = ?", user.ID).Delete(&models.User{}).Error
	require.Error(t, raw)
	kind, _ := inspect(raw)
	assert.Equal(t, foreignKeyViolation, kind, "raw error: %v", raw)
}

func TestUserDuplicateEmailIsConflict(t *testing.T) {
	db := testdb.New(t)
	mustUser(t, db, "dup@example.com")

	_, err := users.Create(db, uuid.New(), "bob", "dup@example.com", "hash")
	require.Error(t, err)
	assert.Equal(t, errorz.KindConflict, errorz.KindOf(err))
	assert.Contains(t, err.Error(), "dup@example.com")
}

func TestUserGetAllAndDelete(t *testing.T) {
	db := testdb.New(t)
	u1 := mustUser(t, db, "1@example.com")
	mustUser(t, db, "2@example.com")

	items, total, err := users.GetAll(db, 0, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 2, total)

	require.NoError(t, users.Delete(db, u1))
	gone, err := users.GetByID(db, u1.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
