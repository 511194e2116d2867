package repository

import (
	"testing"
	"time"

	"franchise-backend/internal/database/models"
	"franchise-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FranchiseRepositoryTestSuite tests the FranchiseRepository
type FranchiseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FranchiseRepository
	branchRepo    *BranchRepository
	productRepo   *ProductRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *FranchiseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewFranchiseRepository(suite.baseTestSuite.DB)
	suite.branchRepo = NewBranchRepository(suite.baseTestSuite.DB)
	suite.productRepo = NewProductRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *FranchiseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FranchiseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *FranchiseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new franchise
func (suite *FranchiseRepositoryTestSuite) TestCreate() {
	franchise := suite.factories.Franchise.Create()

	err := suite.repo.Create(franchise)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, franchise.ID)
	suite.Equal(uuid.Version(7), franchise.ID.Version())
	suite.NotZero(franchise.CreatedAt)
	suite.Equal(franchise.CreatedAt, franchise.UpdatedAt)
	suite.Equal(time.UTC, franchise.CreatedAt.Location())
}

// TestGetByID tests retrieving a franchise by ID
func (suite *FranchiseRepositoryTestSuite) TestGetByID() {
	franchise := suite.factories.Franchise.WithName("Pizza Galaxy")
	suite.Require().NoError(suite.repo.Create(franchise))

	found, err := suite.repo.GetByID(franchise.ID)

	suite.NoError(err)
	suite.Equal(franchise.ID, found.ID)
	suite.Equal("Pizza Galaxy", found.Name)
	suite.True(franchise.CreatedAt.Equal(found.CreatedAt))
}

// TestGetByIDNotFound tests retrieving a non-existent franchise
func (suite *FranchiseRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestExistsByID tests the existence check
func (suite *FranchiseRepositoryTestSuite) TestExistsByID() {
	franchise := suite.factories.Franchise.Create()
	suite.Require().NoError(suite.repo.Create(franchise))

	exists, err := suite.repo.ExistsByID(franchise.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsByID(uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// TestGetAllInCreationOrder tests that listings follow creation order
func (suite *FranchiseRepositoryTestSuite) TestGetAllInCreationOrder() {
	names := []string{"Zeta Foods", "Alpha Foods", "Mid Foods"}
	for _, name := range names {
		suite.Require().NoError(suite.repo.Create(suite.factories.Franchise.WithName(name)))
	}

	franchises, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(franchises, 3)
	for i, name := range names {
		suite.Equal(name, franchises[i].Name)
	}
}

// TestGetWithTree tests loading a franchise with branches and products
func (suite *FranchiseRepositoryTestSuite) TestGetWithTree() {
	franchise := suite.factories.Franchise.Create()
	suite.Require().NoError(suite.repo.Create(franchise))
	first := suite.factories.Branch.WithName(franchise.ID, "First Branch")
	second := suite.factories.Branch.WithName(franchise.ID, "Second Branch")
	suite.Require().NoError(suite.branchRepo.Create(first))
	suite.Require().NoError(suite.branchRepo.Create(second))
	suite.Require().NoError(suite.productRepo.Create(suite.factories.Product.WithStock(second.ID, "Garlic Bread", 3)))
	suite.Require().NoError(suite.productRepo.Create(suite.factories.Product.WithStock(second.ID, "Calzone", 8)))

	found, err := suite.repo.GetWithTree(franchise.ID)

	suite.NoError(err)
	suite.Len(found.Branches, 2)
	suite.Equal("First Branch", found.Branches[0].Name)
	suite.Empty(found.Branches[0].Products)
	suite.Equal("Second Branch", found.Branches[1].Name)
	suite.Len(found.Branches[1].Products, 2)
	suite.Equal("Garlic Bread", found.Branches[1].Products[0].Name)
	suite.Equal("Calzone", found.Branches[1].Products[1].Name)
}

// TestUpdateFields tests updating columns with an explicit modification time
func (suite *FranchiseRepositoryTestSuite) TestUpdateFields() {
	franchise := suite.factories.Franchise.WithName("Before")
	suite.Require().NoError(suite.repo.Create(franchise))
	updatedAt := models.NextUpdate(franchise.UpdatedAt)

	err := suite.repo.UpdateFields(franchise.ID, map[string]interface{}{
		"name":       "After",
		"updated_at": updatedAt,
	})

	suite.NoError(err)
	found, err := suite.repo.GetByID(franchise.ID)
	suite.NoError(err)
	suite.Equal("After", found.Name)
	suite.True(updatedAt.Equal(found.UpdatedAt))
	suite.True(found.UpdatedAt.After(found.CreatedAt))
	suite.True(franchise.CreatedAt.Equal(found.CreatedAt))
}

// TestDelete tests deleting a franchise
func (suite *FranchiseRepositoryTestSuite) TestDelete() {
	franchise := suite.factories.Franchise.Create()
	suite.Require().NoError(suite.repo.Create(franchise))

	deleted, err := suite.repo.Delete(franchise.ID)
	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	deleted, err = suite.repo.Delete(franchise.ID)
	suite.NoError(err)
	suite.Equal(int64(0), deleted)
}

// TestFranchiseRepositoryTestSuite runs the test suite
func TestFranchiseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FranchiseRepositoryTestSuite))
}
