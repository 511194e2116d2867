package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"franchise-backend/internal/database/models"
	apperrors "franchise-backend/internal/errors"
	"franchise-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FranchiseServiceTestSuite defines the test suite for FranchiseService
type FranchiseServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	m                *unitOfWorkMocks
	franchiseService *service.FranchiseService
}

// SetupTest sets up the test suite
func (suite *FranchiseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newUnitOfWorkMocks(suite.ctrl)
	suite.franchiseService = service.NewFranchiseService(suite.m.uow, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *FranchiseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateFranchise tests creating a franchise
func (suite *FranchiseServiceTestSuite) TestCreateFranchise() {
	franchiseID := orderedID(1)
	req := &service.CreateFranchiseRequest{Name: "Burger Planet"}

	suite.m.expectDo()
	suite.m.franchises.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(franchise *models.Franchise) error {
			assert.Equal(suite.T(), "Burger Planet", franchise.Name)
			franchise.ID = franchiseID
			return nil
		}).
		Times(1)

	response, err := suite.franchiseService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), franchiseID, response.ID)
	assert.Equal(suite.T(), "Burger Planet", response.Name)
	assert.NotNil(suite.T(), response.Branches)
	assert.Empty(suite.T(), response.Branches)
}

// TestCreateFranchiseValidationError tests that invalid names never reach the store
func (suite *FranchiseServiceTestSuite) TestCreateFranchiseValidationError() {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{name: "empty", input: "", message: "is required"},
		{name: "blank", input: "    ", message: "must not be blank"},
		{name: "too short", input: "ab", message: "must be at least 3 characters"},
		{name: "too long", input: strings.Repeat("x", 101), message: "must be at most 100 characters"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			response, err := suite.franchiseService.Create(&service.CreateFranchiseRequest{Name: tc.input})

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), response)
			assert.True(suite.T(), apperrors.IsValidation(err))
			assert.Equal(suite.T(), "name", validationField(err))
			assert.Equal(suite.T(), tc.message, validationMessage(err))
		})
	}
}

// TestCreateFranchiseNameBoundaries tests that 3 and 100 characters are accepted
func (suite *FranchiseServiceTestSuite) TestCreateFranchiseNameBoundaries() {
	for _, name := range []string{"abc", strings.Repeat("x", 100), "Café"} {
		suite.m.expectDo()
		suite.m.franchises.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

		response, err := suite.franchiseService.Create(&service.CreateFranchiseRequest{Name: name})

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), name, response.Name)
	}
}

// TestCreateFranchiseStoreError tests that store failures are wrapped
func (suite *FranchiseServiceTestSuite) TestCreateFranchiseStoreError() {
	suite.m.expectDo()
	suite.m.franchises.EXPECT().Create(gomock.Any()).Return(errors.New("connection reset")).Times(1)

	response, err := suite.franchiseService.Create(&service.CreateFranchiseRequest{Name: "Burger Planet"})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "failed to create franchise")
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

// TestGetFranchiseByID tests retrieving a franchise with its tree
func (suite *FranchiseServiceTestSuite) TestGetFranchiseByID() {
	franchiseID := orderedID(1)
	branchID := orderedID(2)
	franchise := &models.Franchise{
		BaseModel: models.BaseModel{ID: franchiseID},
		Name:      "Burger Planet",
		Branches: []models.Branch{
			{
				BaseModel:   models.BaseModel{ID: branchID},
				FranchiseID: franchiseID,
				Name:        "Downtown",
				Products: []models.Product{
					{BaseModel: models.BaseModel{ID: orderedID(3)}, BranchID: branchID, Name: "Cheeseburger", Stock: 7},
				},
			},
		},
	}

	suite.m.expectRead()
	suite.m.franchises.EXPECT().GetWithTree(franchiseID).Return(franchise, nil).Times(1)

	response, err := suite.franchiseService.GetByID(franchiseID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), franchiseID, response.ID)
	assert.Len(suite.T(), response.Branches, 1)
	assert.Equal(suite.T(), "Downtown", response.Branches[0].Name)
	assert.Len(suite.T(), response.Branches[0].Products, 1)
	assert.Equal(suite.T(), 7, response.Branches[0].Products[0].Stock)
}

// TestGetFranchiseByIDNotFound tests retrieving a missing franchise
func (suite *FranchiseServiceTestSuite) TestGetFranchiseByIDNotFound() {
	franchiseID := uuid.New()

	suite.m.expectRead()
	suite.m.franchises.EXPECT().GetWithTree(franchiseID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.franchiseService.GetByID(franchiseID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrFranchiseNotFound))
	assert.Contains(suite.T(), err.Error(), franchiseID.String())
}

// TestGetAllFranchises tests listing franchises
func (suite *FranchiseServiceTestSuite) TestGetAllFranchises() {
	suite.m.expectRead()
	suite.m.franchises.EXPECT().GetAllWithTree().Return([]models.Franchise{
		{BaseModel: models.BaseModel{ID: orderedID(1)}, Name: "First"},
		{BaseModel: models.BaseModel{ID: orderedID(2)}, Name: "Second"},
	}, nil).Times(1)

	responses, err := suite.franchiseService.GetAll()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "First", responses[0].Name)
	assert.Equal(suite.T(), "Second", responses[1].Name)
}

// TestRenameFranchise tests renaming a franchise
func (suite *FranchiseServiceTestSuite) TestRenameFranchise() {
	franchiseID := orderedID(1)
	previous := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.m.expectDo()
	suite.m.franchises.EXPECT().GetByID(franchiseID).Return(&models.Franchise{
		BaseModel: models.BaseModel{ID: franchiseID, CreatedAt: previous, UpdatedAt: previous},
		Name:      "Old Name",
	}, nil).Times(1)
	suite.m.franchises.EXPECT().
		UpdateFields(franchiseID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), "New Name", updates["name"])
			updatedAt, ok := updates["updated_at"].(time.Time)
			assert.True(suite.T(), ok)
			assert.True(suite.T(), updatedAt.After(previous))
			return nil
		}).
		Times(1)
	suite.m.franchises.EXPECT().GetWithTree(franchiseID).Return(&models.Franchise{
		BaseModel: models.BaseModel{ID: franchiseID, CreatedAt: previous, UpdatedAt: previous.Add(time.Microsecond)},
		Name:      "New Name",
	}, nil).Times(1)

	response, err := suite.franchiseService.Rename(franchiseID, &service.UpdateNameRequest{Name: "New Name"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Name", response.Name)
	assert.Equal(suite.T(), previous, response.CreatedAt)
}

// TestRenameFranchiseNotFound tests renaming a missing franchise
func (suite *FranchiseServiceTestSuite) TestRenameFranchiseNotFound() {
	franchiseID := uuid.New()

	suite.m.expectDo()
	suite.m.franchises.EXPECT().GetByID(franchiseID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.franchiseService.Rename(franchiseID, &service.UpdateNameRequest{Name: "New Name"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrFranchiseNotFound))
}

// TestRenameFranchiseValidationError tests that validation runs before the lookup
func (suite *FranchiseServiceTestSuite) TestRenameFranchiseValidationError() {
	response, err := suite.franchiseService.Rename(uuid.New(), &service.UpdateNameRequest{Name: "  "})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteFranchiseCascades tests that delete removes products, branches and the franchise
func (suite *FranchiseServiceTestSuite) TestDeleteFranchiseCascades() {
	franchiseID := orderedID(1)
	branchIDs := []uuid.UUID{orderedID(2), orderedID(3)}

	suite.m.expectDo()
	gomock.InOrder(
		suite.m.franchises.EXPECT().ExistsByID(franchiseID).Return(true, nil),
		suite.m.branches.EXPECT().GetByFranchiseID(franchiseID).Return([]models.Branch{
			{BaseModel: models.BaseModel{ID: branchIDs[0]}, FranchiseID: franchiseID},
			{BaseModel: models.BaseModel{ID: branchIDs[1]}, FranchiseID: franchiseID},
		}, nil),
		suite.m.products.EXPECT().DeleteByBranchIDs(branchIDs).Return(int64(3), nil),
		suite.m.branches.EXPECT().DeleteByFranchiseID(franchiseID).Return(int64(2), nil),
		suite.m.franchises.EXPECT().Delete(franchiseID).Return(int64(1), nil),
		suite.m.branches.EXPECT().CountByFranchiseID(franchiseID).Return(int64(0), nil),
		suite.m.products.EXPECT().CountByBranchIDs(branchIDs).Return(int64(0), nil),
	)

	err := suite.franchiseService.Delete(franchiseID)

	assert.NoError(suite.T(), err)
}

// TestDeleteFranchiseNotFound tests that deleting a missing franchise touches nothing
func (suite *FranchiseServiceTestSuite) TestDeleteFranchiseNotFound() {
	franchiseID := uuid.New()

	suite.m.expectDo()
	suite.m.franchises.EXPECT().ExistsByID(franchiseID).Return(false, nil).Times(1)

	err := suite.franchiseService.Delete(franchiseID)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrFranchiseNotFound))
}

// TestDeleteFranchiseIntegrityViolation tests that dangling children abort the delete
func (suite *FranchiseServiceTestSuite) TestDeleteFranchiseIntegrityViolation() {
	franchiseID := orderedID(1)
	branchIDs := []uuid.UUID{orderedID(2)}

	suite.m.expectDo()
	suite.m.franchises.EXPECT().ExistsByID(franchiseID).Return(true, nil)
	suite.m.branches.EXPECT().GetByFranchiseID(franchiseID).Return([]models.Branch{
		{BaseModel: models.BaseModel{ID: branchIDs[0]}, FranchiseID: franchiseID},
	}, nil)
	suite.m.products.EXPECT().DeleteByBranchIDs(branchIDs).Return(int64(0), nil)
	suite.m.branches.EXPECT().DeleteByFranchiseID(franchiseID).Return(int64(1), nil)
	suite.m.franchises.EXPECT().Delete(franchiseID).Return(int64(1), nil)
	suite.m.branches.EXPECT().CountByFranchiseID(franchiseID).Return(int64(0), nil)
	suite.m.products.EXPECT().CountByBranchIDs(branchIDs).Return(int64(2), nil)

	err := suite.franchiseService.Delete(franchiseID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsIntegrity(err))
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

// TestGetTopStockProducts tests the per-branch top stock report
func (suite *FranchiseServiceTestSuite) TestGetTopStockProducts() {
	franchiseID := orderedID(1)
	b1, b2, b3 := orderedID(10), orderedID(11), orderedID(12)

	suite.m.expectRead()
	suite.m.franchises.EXPECT().ExistsByID(franchiseID).Return(true, nil)
	suite.m.branches.EXPECT().GetByFranchiseID(franchiseID).Return([]models.Branch{
		{BaseModel: models.BaseModel{ID: b1}, FranchiseID: franchiseID, Name: "North"},
		{BaseModel: models.BaseModel{ID: b2}, FranchiseID: franchiseID, Name: "Empty"},
		{BaseModel: models.BaseModel{ID: b3}, FranchiseID: franchiseID, Name: "South"},
	}, nil)
	suite.m.products.EXPECT().GetByBranchIDOrderByStockDesc(b1).Return([]models.Product{
		{BaseModel: models.BaseModel{ID: orderedID(21)}, BranchID: b1, Name: "Fries", Stock: 12},
		{BaseModel: models.BaseModel{ID: orderedID(20)}, BranchID: b1, Name: "Burger", Stock: 5},
	}, nil)
	suite.m.products.EXPECT().GetByBranchIDOrderByStockDesc(b2).Return([]models.Product{}, nil)
	// equal stock: the lower id wins regardless of the order rows arrive in
	suite.m.products.EXPECT().GetByBranchIDOrderByStockDesc(b3).Return([]models.Product{
		{BaseModel: models.BaseModel{ID: orderedID(31)}, BranchID: b3, Name: "Shake", Stock: 9},
		{BaseModel: models.BaseModel{ID: orderedID(30)}, BranchID: b3, Name: "Soda", Stock: 9},
	}, nil)

	report, err := suite.franchiseService.GetTopStockProducts(franchiseID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.TopStockProductResponse{
		{ProductID: orderedID(21), ProductName: "Fries", Stock: 12, BranchID: b1, BranchName: "North"},
		{ProductID: orderedID(30), ProductName: "Soda", Stock: 9, BranchID: b3, BranchName: "South"},
	}, report)
}

// TestGetTopStockProductsNoBranches tests that a franchise without branches yields an empty report
func (suite *FranchiseServiceTestSuite) TestGetTopStockProductsNoBranches() {
	franchiseID := orderedID(1)

	suite.m.expectRead()
	suite.m.franchises.EXPECT().ExistsByID(franchiseID).Return(true, nil)
	suite.m.branches.EXPECT().GetByFranchiseID(franchiseID).Return([]models.Branch{}, nil)

	report, err := suite.franchiseService.GetTopStockProducts(franchiseID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), report)
	assert.Empty(suite.T(), report)
}

// TestGetTopStockProductsNotFound tests the report for a missing franchise
func (suite *FranchiseServiceTestSuite) TestGetTopStockProductsNotFound() {
	franchiseID := uuid.New()

	suite.m.expectRead()
	suite.m.franchises.EXPECT().ExistsByID(franchiseID).Return(false, nil)

	report, err := suite.franchiseService.GetTopStockProducts(franchiseID)

	assert.Nil(suite.T(), report)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrFranchiseNotFound))
}

// TestFranchiseServiceTestSuite runs the test suite
func TestFranchiseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FranchiseServiceTestSuite))
}
