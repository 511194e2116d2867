package repository

import (
	"database/sql"

	"gorm.io/gorm"
)

// creationOrder is the enumeration order of every listing: oldest first,
// ties broken by the (time-ordered) id.
const creationOrder = "created_at ASC, id ASC"

func orderedByCreation(db *gorm.DB) *gorm.DB {
	return db.Order(creationOrder)
}

// Repositories groups the repositories bound to one connection or transaction
type Repositories struct {
	Franchises FranchiseRepositoryInterface
	Branches   BranchRepositoryInterface
	Products   ProductRepositoryInterface
}

// NewRepositories binds all repositories to db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Franchises: NewFranchiseRepository(db),
		Branches:   NewBranchRepository(db),
		Products:   NewProductRepository(db),
	}
}

// UnitOfWork runs repository calls inside gorm transactions
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work over db
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do runs fn in a read-write transaction
func (u *UnitOfWork) Do(fn func(repos *Repositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// Read runs fn in a read-only REPEATABLE READ transaction, so the multi-query
// loads inside fn all see the same snapshot.
func (u *UnitOfWork) Read(fn func(repos *Repositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}
