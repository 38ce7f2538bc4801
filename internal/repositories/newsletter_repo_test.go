package repositories

import (
	"context"
	"testing"
	"time"

	"homekitchen/internal/common"
	"homekitchen/internal/models"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type NewsletterRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    NewsletterRepository
	context context.Context
}

func (suite *NewsletterRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewNewsletterRepo(mock)
	suite.context = context.Background()
}

func (suite *NewsletterRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestNewsletterRepoTestSuite(t *testing.T) {
	suite.Run(t, new(NewsletterRepoTestSuite))
}

func (suite *NewsletterRepoTestSuite) TestCreate_Success() {
	subscriber := &models.NewsletterSubscriber{Email: "fan@example.com"}
	subscribedAt := time.Now()

	suite.mock.ExpectQuery(`INSERT INTO newsletter_subscribers`).
		WithArgs(subscriber.Email).
		WillReturnRows(pgxmock.NewRows([]string{"id", "subscribed_at"}).AddRow(int64(3), subscribedAt))

	err := suite.repo.Create(suite.context, subscriber)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), subscriber.ID)
	assert.Equal(suite.T(), subscribedAt, subscriber.SubscribedAt)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *NewsletterRepoTestSuite) TestCreate_DuplicateEmail() {
	subscriber := &models.NewsletterSubscriber{Email: "fan@example.com"}

	suite.mock.ExpectQuery(`INSERT INTO newsletter_subscribers`).
		WithArgs(subscriber.Email).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "newsletter_subscribers_email_key"})

	err := suite.repo.Create(suite.context, subscriber)
	assert.ErrorIs(suite.T(), err, common.ErrConflict)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *NewsletterRepoTestSuite) TestExistsByEmail() {
	suite.mock.ExpectQuery(`SELECT id FROM newsletter_subscribers WHERE email = \$1`).
		WithArgs("fan@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	exists, err := suite.repo.ExistsByEmail(suite.context, "fan@example.com")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *NewsletterRepoTestSuite) TestExistsByEmail_Unknown() {
	suite.mock.ExpectQuery(`SELECT id FROM newsletter_subscribers WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	exists, err := suite.repo.ExistsByEmail(suite.context, "ghost@example.com")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *NewsletterRepoTestSuite) TestDeleteByEmail_Success() {
	suite.mock.ExpectExec(`DELETE FROM newsletter_subscribers WHERE email = \$1`).
		WithArgs("fan@example.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.DeleteByEmail(suite.context, "fan@example.com")
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *NewsletterRepoTestSuite) TestDeleteByEmail_NotFound() {
	suite.mock.ExpectExec(`DELETE FROM newsletter_subscribers WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := suite.repo.DeleteByEmail(suite.context, "ghost@example.com")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *NewsletterRepoTestSuite) TestList() {
	now := time.Now()
	suite.mock.ExpectQuery(`SELECT id, email, subscribed_at\s+FROM newsletter_subscribers\s+ORDER BY subscribed_at DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "subscribed_at"}).
			AddRow(int64(2), "late@example.com", now).
			AddRow(int64(1), "early@example.com", now.Add(-time.Hour)))

	subscribers, err := suite.repo.List(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), subscribers, 2)
	assert.Equal(suite.T(), "late@example.com", subscribers[0].Email)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
