//go:build integration

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
)

type RepositoriesSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	cities      CityRepository
	pois        POIRepository
}

func TestRepositoriesSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesSuite))
}

func (s *RepositoriesSuite) SetupSuite() {
	s.ctx = context.Background()

	var err error
	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("tripplanner_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2*time.Minute),
		),
	)
	require.NoError(s.T(), err, "failed to start postgres container")

	dsn, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	s.db, err = gorm.Open(gormpg.Open(dsn), &gorm.Config{})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.db.AutoMigrate(&db_models.City{}, &db_models.POI{}))

	s.cities = NewCityRepository(s.db)
	s.pois = NewPOIRepository(s.db)
}

func (s *RepositoriesSuite) TearDownSuite() {
	if s.pgContainer != nil {
		s.Require().NoError(s.pgContainer.Terminate(s.ctx))
	}
}

func (s *RepositoriesSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE pois, cities").Error)
}

func (s *RepositoriesSuite) TestCityUpsertKeepsOneRowPerSearchKey() {
	missing, err := s.cities.GetBySearchKey(s.ctx, "paris")
	s.Require().NoError(err)
	s.Nil(missing)

	first, err := s.cities.Upsert(s.ctx, &db_models.City{SearchKey: "paris", Name: "PARIS", Latitude: 48.85, Longitude: 2.35})
	s.Require().NoError(err)

	second, err := s.cities.Upsert(s.ctx, &db_models.City{SearchKey: "paris", Name: "PARIS", IATACode: "PAR", Latitude: 48.86, Longitude: 2.34})
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal("PAR", second.IATACode)
	s.InDelta(48.86, second.Latitude, 1e-9)
}

func (s *RepositoriesSuite) TestReplaceForCityKeepsOrderAndStampsSync() {
	city, err := s.cities.Upsert(s.ctx, &db_models.City{SearchKey: "rome", Name: "ROME"})
	s.Require().NoError(err)

	err = s.pois.ReplaceForCity(s.ctx, city.ID, []db_models.POI{
		{Name: "Colosseum", Category: "MONUMENT", EntranceFee: 10, Tags: []string{"historic=monument"}},
		{Name: "Castel Sant'Angelo", Category: "CASTLE", EntranceFee: 20},
	}, 1700000000)
	s.Require().NoError(err)

	err = s.pois.ReplaceForCity(s.ctx, city.ID, []db_models.POI{
		{Name: "Vatican Museums", Category: "MUSEUM", EntranceFee: 15},
		{Name: "Colosseum", Category: "MONUMENT", EntranceFee: 10, Tags: []string{"historic=monument"}},
	}, 1700000100)
	s.Require().NoError(err)

	got, err := s.pois.ListByCity(s.ctx, city.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Vatican Museums", got[0].Name)
	s.Equal("Colosseum", got[1].Name)
	s.Equal([]string{"historic=monument"}, []string(got[1].Tags))

	reloaded, err := s.cities.GetBySearchKey(s.ctx, "rome")
	s.Require().NoError(err)
	s.Equal(int64(1700000100), reloaded.POIsSyncedAt)
}

func (s *RepositoriesSuite) TestReplaceForUnknownCity() {
	err := s.pois.ReplaceForCity(s.ctx, uuid.New(), nil, 1)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}
