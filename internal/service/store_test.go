package service_test

import (
	"errors"
	"os"
	"testing"

	"franchise-backend/internal/database/models"
	apperrors "franchise-backend/internal/errors"
	"franchise-backend/internal/metrics"
	"franchise-backend/internal/repository"
	"franchise-backend/internal/service"
	"franchise-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// StoreTestSuite runs the services against a real database
type StoreTestSuite struct {
	suite.Suite
	base       *testutils.BaseTestSuite
	factories  *testutils.FactorySet
	franchises *service.FranchiseService
	branches   *service.BranchService
	products   *service.ProductService
}

func (s *StoreTestSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	s.factories = testutils.NewFactorySet()

	uow := repository.NewUnitOfWork(s.base.DB)
	validator := service.NewValidator()
	s.franchises = service.NewFranchiseService(uow, validator)
	s.branches = service.NewBranchService(uow, validator)
	s.products = service.NewProductService(uow, validator)
}

func (s *StoreTestSuite) SetupTest() {
	s.base.CleanTestDB()
}

func (s *StoreTestSuite) TearDownSuite() {
	s.base.TeardownTestSuite()
}

func (s *StoreTestSuite) count(model interface{}) int64 {
	var n int64
	require.NoError(s.T(), s.base.DB.Model(model).Count(&n).Error)
	return n
}

func (s *StoreTestSuite) seedBranch(franchiseID uuid.UUID, stocks ...int) *models.Branch {
	branch := s.factories.Branch.Create(franchiseID)
	require.NoError(s.T(), s.base.DB.Create(branch).Error)
	for _, stock := range stocks {
		product := s.factories.Product.Create(branch.ID)
		product.Stock = stock
		require.NoError(s.T(), s.base.DB.Create(product).Error)
	}
	return branch
}

// TestDeleteFranchiseRemovesWholeTree deletes N branches and M products with their franchise
func (s *StoreTestSuite) TestDeleteFranchiseRemovesWholeTree() {
	t := s.T()

	doomed := s.factories.Franchise.Create()
	require.NoError(t, s.base.DB.Create(doomed).Error)
	s.seedBranch(doomed.ID, 1, 2, 3)
	s.seedBranch(doomed.ID, 4, 5)
	s.seedBranch(doomed.ID)

	survivor := s.factories.Franchise.Create()
	require.NoError(t, s.base.DB.Create(survivor).Error)
	kept := s.seedBranch(survivor.ID, 9)

	deletedProducts := metrics.CascadeDeletedRecords.WithLabelValues(apperrors.EntityFranchise, apperrors.EntityProduct)
	deletedBranches := metrics.CascadeDeletedRecords.WithLabelValues(apperrors.EntityFranchise, apperrors.EntityBranch)
	productsBefore := testutil.ToFloat64(deletedProducts)
	branchesBefore := testutil.ToFloat64(deletedBranches)

	require.NoError(t, s.franchises.Delete(doomed.ID))

	assert.Equal(t, int64(1), s.count(&models.Franchise{}))
	assert.Equal(t, int64(1), s.count(&models.Branch{}))
	assert.Equal(t, int64(1), s.count(&models.Product{}))
	assert.Equal(t, productsBefore+5, testutil.ToFloat64(deletedProducts))
	assert.Equal(t, branchesBefore+3, testutil.ToFloat64(deletedBranches))

	remaining, err := s.branches.GetByFranchise(survivor.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)

	err = s.franchises.Delete(doomed.ID)
	var notFound *apperrors.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

// TestTopStockTieGoesToLowestID inserts the higher id first so insertion order cannot decide
func (s *StoreTestSuite) TestTopStockTieGoesToLowestID() {
	t := s.T()

	franchise := s.factories.Franchise.Create()
	require.NoError(t, s.base.DB.Create(franchise).Error)
	branch := s.factories.Branch.Create(franchise.ID)
	require.NoError(t, s.base.DB.Create(branch).Error)

	later := s.factories.Product.WithStock(branch.ID, "Onion Rings", 18)
	later.ID = orderedID(2)
	require.NoError(t, s.base.DB.Create(later).Error)
	earlier := s.factories.Product.WithStock(branch.ID, "Classic Burger", 18)
	earlier.ID = orderedID(1)
	require.NoError(t, s.base.DB.Create(earlier).Error)
	low := s.factories.Product.WithStock(branch.ID, "Side Salad", 3)
	require.NoError(t, s.base.DB.Create(low).Error)

	for i := 0; i < 3; i++ {
		report, err := s.franchises.GetTopStockProducts(franchise.ID)
		require.NoError(t, err)
		require.Len(t, report, 1)
		assert.Equal(t, earlier.ID, report[0].ProductID)
		assert.Equal(t, 18, report[0].Stock)
	}
}

// TestTopStockFollowsStockUpdates checks the report reflects the latest committed stock
func (s *StoreTestSuite) TestTopStockFollowsStockUpdates() {
	t := s.T()

	franchise, err := s.franchises.Create(&service.CreateFranchiseRequest{Name: "Burger Planet"})
	require.NoError(t, err)
	north, err := s.branches.Create(&service.CreateBranchRequest{Name: "North Side", FranchiseID: franchise.ID})
	require.NoError(t, err)
	_, err = s.branches.Create(&service.CreateBranchRequest{Name: "South Side", FranchiseID: franchise.ID})
	require.NoError(t, err)
	fries, err := s.products.Create(&service.CreateProductRequest{Name: "Fries", Stock: intPtr(5), BranchID: north.ID})
	require.NoError(t, err)
	shakes, err := s.products.Create(&service.CreateProductRequest{Name: "Shakes", Stock: intPtr(12), BranchID: north.ID})
	require.NoError(t, err)

	report, err := s.franchises.GetTopStockProducts(franchise.ID)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, shakes.ID, report[0].ProductID)

	_, err = s.products.UpdateStock(fries.ID, &service.UpdateStockRequest{Stock: intPtr(30)})
	require.NoError(t, err)

	report, err = s.franchises.GetTopStockProducts(franchise.ID)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, fries.ID, report[0].ProductID)
	assert.Equal(t, 30, report[0].Stock)
	assert.Equal(t, "North Side", report[0].BranchName)
}

// TestCreateUnderMissingOwnerWritesNothing checks failed creations leave the store untouched
func (s *StoreTestSuite) TestCreateUnderMissingOwnerWritesNothing() {
	t := s.T()

	_, err := s.branches.Create(&service.CreateBranchRequest{Name: "Nowhere", FranchiseID: uuid.New()})
	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, apperrors.EntityFranchise, notFound.Entity)

	_, err = s.products.Create(&service.CreateProductRequest{Name: "Ghost", Stock: intPtr(1), BranchID: uuid.New()})
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, apperrors.EntityBranch, notFound.Entity)

	assert.Equal(t, int64(0), s.count(&models.Branch{}))
	assert.Equal(t, int64(0), s.count(&models.Product{}))
}

// TestRenameKeepsCreationTime checks only updated_at moves on a rename
func (s *StoreTestSuite) TestRenameKeepsCreationTime() {
	t := s.T()

	created, err := s.franchises.Create(&service.CreateFranchiseRequest{Name: "Taco Town"})
	require.NoError(t, err)

	renamed, err := s.franchises.Rename(created.ID, &service.UpdateNameRequest{Name: "Taco Country"})
	require.NoError(t, err)
	assert.Equal(t, "Taco Country", renamed.Name)
	assert.True(t, renamed.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, renamed.UpdatedAt.After(created.UpdatedAt))

	fetched, err := s.franchises.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Taco Country", fetched.Name)
	assert.True(t, fetched.UpdatedAt.Equal(renamed.UpdatedAt))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
