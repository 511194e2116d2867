package service_test

import (
	"errors"

	apperrors "franchise-backend/internal/errors"
	"franchise-backend/internal/mocks"
	"franchise-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// unitOfWorkMocks bundles a mocked unit of work with the repositories it hands out
type unitOfWorkMocks struct {
	uow        *mocks.MockUnitOfWorkInterface
	franchises *mocks.MockFranchiseRepositoryInterface
	branches   *mocks.MockBranchRepositoryInterface
	products   *mocks.MockProductRepositoryInterface
	repos      *repository.Repositories
}

func newUnitOfWorkMocks(ctrl *gomock.Controller) *unitOfWorkMocks {
	m := &unitOfWorkMocks{
		uow:        mocks.NewMockUnitOfWorkInterface(ctrl),
		franchises: mocks.NewMockFranchiseRepositoryInterface(ctrl),
		branches:   mocks.NewMockBranchRepositoryInterface(ctrl),
		products:   mocks.NewMockProductRepositoryInterface(ctrl),
	}
	m.repos = &repository.Repositories{
		Franchises: m.franchises,
		Branches:   m.branches,
		Products:   m.products,
	}
	return m
}

// expectDo lets one read-write unit of work run against the mocked repositories
func (m *unitOfWorkMocks) expectDo() {
	m.uow.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(fn func(*repository.Repositories) error) error {
			return fn(m.repos)
		}).
		Times(1)
}

// expectRead lets one read-only unit of work run against the mocked repositories
func (m *unitOfWorkMocks) expectRead() {
	m.uow.EXPECT().
		Read(gomock.Any()).
		DoAndReturn(func(fn func(*repository.Repositories) error) error {
			return fn(m.repos)
		}).
		Times(1)
}

func validationField(err error) string {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Field
	}
	return ""
}

func validationMessage(err error) string {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return ""
}

func intPtr(v int) *int {
	return &v
}

// orderedID returns a fixed UUIDv7-shaped id; lower n sorts first
func orderedID(n byte) uuid.UUID {
	id := uuid.MustParse("01890000-0000-7000-8000-000000000000")
	id[15] = n
	return id
}
