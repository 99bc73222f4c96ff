package userrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/beliemun/uber-backend/internal/adapters/out/postgres/userrepo"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
	suite.repository = userrepo.NewGormUserRepository(suite.db)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	u, err := user.NewUser(kernel.NewUUID(), user.Owner)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(u.ID(), got.ID())
	suite.Equal(user.Owner, got.Role())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ExistingUserUpdatesRole() {
	ctx := context.Background()
	id := kernel.NewUUID()

	asClient, err := user.NewUser(id, user.Client)
	suite.Require().NoError(err)
	asDriver, err := user.NewUser(id, user.Driver)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, asClient))
	suite.Require().NoError(suite.repository.Add(ctx, asDriver))

	got, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(user.Driver, got.Role())

	var count int64
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_Unknown() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
