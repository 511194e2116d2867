package repository

import (
	"testing"

	"franchise-backend/internal/database/models"
	"franchise-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BranchRepositoryTestSuite tests the BranchRepository
type BranchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BranchRepository
	franchiseRepo *FranchiseRepository
	productRepo   *ProductRepository
	factories     *testutils.FactorySet
	franchise     *models.Franchise
}

// SetupSuite runs before all tests in the suite
func (suite *BranchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBranchRepository(suite.baseTestSuite.DB)
	suite.franchiseRepo = NewFranchiseRepository(suite.baseTestSuite.DB)
	suite.productRepo = NewProductRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BranchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and creates a parent franchise
func (suite *BranchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.franchise = suite.factories.Franchise.Create()
	suite.Require().NoError(suite.franchiseRepo.Create(suite.franchise))
}

// TearDownTest runs after each test
func (suite *BranchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new branch
func (suite *BranchRepositoryTestSuite) TestCreate() {
	branch := suite.factories.Branch.Create(suite.franchise.ID)

	err := suite.repo.Create(branch)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, branch.ID)
	suite.NotZero(branch.CreatedAt)
}

// TestCreateUnknownFranchise tests that the foreign key rejects orphan branches
func (suite *BranchRepositoryTestSuite) TestCreateUnknownFranchise() {
	branch := suite.factories.Branch.Create(uuid.New())

	err := suite.repo.Create(branch)

	suite.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

// TestGetByFranchiseID tests listing the branches of one franchise
func (suite *BranchRepositoryTestSuite) TestGetByFranchiseID() {
	other := suite.factories.Franchise.Create()
	suite.Require().NoError(suite.franchiseRepo.Create(other))

	suite.Require().NoError(suite.repo.Create(suite.factories.Branch.WithName(suite.franchise.ID, "West")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Branch.WithName(other.ID, "Elsewhere")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Branch.WithName(suite.franchise.ID, "East")))

	branches, err := suite.repo.GetByFranchiseID(suite.franchise.ID)

	suite.NoError(err)
	suite.Len(branches, 2)
	suite.Equal("West", branches[0].Name)
	suite.Equal("East", branches[1].Name)

	count, err := suite.repo.CountByFranchiseID(suite.franchise.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestGetWithProducts tests loading a branch with its products
func (suite *BranchRepositoryTestSuite) TestGetWithProducts() {
	branch := suite.factories.Branch.Create(suite.franchise.ID)
	suite.Require().NoError(suite.repo.Create(branch))
	suite.Require().NoError(suite.productRepo.Create(suite.factories.Product.WithStock(branch.ID, "Latte", 4)))

	found, err := suite.repo.GetWithProducts(branch.ID)

	suite.NoError(err)
	suite.Equal(branch.ID, found.ID)
	suite.Len(found.Products, 1)
	suite.Equal("Latte", found.Products[0].Name)

	_, err = suite.repo.GetWithProducts(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteByFranchiseID tests removing all branches of a franchise
func (suite *BranchRepositoryTestSuite) TestDeleteByFranchiseID() {
	other := suite.factories.Franchise.Create()
	suite.Require().NoError(suite.franchiseRepo.Create(other))
	suite.Require().NoError(suite.repo.Create(suite.factories.Branch.Create(suite.franchise.ID)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Branch.Create(suite.franchise.ID)))
	survivor := suite.factories.Branch.Create(other.ID)
	suite.Require().NoError(suite.repo.Create(survivor))

	deleted, err := suite.repo.DeleteByFranchiseID(suite.franchise.ID)

	suite.NoError(err)
	suite.Equal(int64(2), deleted)
	exists, err := suite.repo.ExistsByID(survivor.ID)
	suite.NoError(err)
	suite.True(exists)
}

// TestDelete tests deleting a single branch
func (suite *BranchRepositoryTestSuite) TestDelete() {
	branch := suite.factories.Branch.Create(suite.franchise.ID)
	suite.Require().NoError(suite.repo.Create(branch))

	deleted, err := suite.repo.Delete(branch.ID)

	suite.NoError(err)
	suite.Equal(int64(1), deleted)
	_, err = suite.repo.GetByID(branch.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestBranchRepositoryTestSuite runs the test suite
func TestBranchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BranchRepositoryTestSuite))
}
