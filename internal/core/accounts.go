package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"solpay/internal/repository"
)

var ErrContactNotFound error = errors.New("no contact matches that address")

// Account is the read model for a registered user.
type Account struct {
	ID        string `json:"id"`
	Username  string `json:"username,omitempty"`
	PublicKey string `json:"publicKey,omitempty"`
}

// Contact is the read model for an address-book entry.
type Contact struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	PublicKey string    `json:"publicKey"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactPage is one page of search results.
type ContactPage struct {
	Contacts []Contact `json:"contacts"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

// Accounts covers user registration and the address book.
type Accounts struct {
	repo  AccountStore
	names NameCache
	logs  *zap.SugaredLogger
}

func NewAccounts(repo AccountStore, names NameCache, logger *zap.SugaredLogger) *Accounts {
	return &Accounts{
		repo:  repo,
		names: names,
		logs:  logger,
	}
}

// Register returns the account for the identity-provider subject, creating
// it on first visit. Username and wallet address stick from the first write.
func (a *Accounts) Register(ctx context.Context, subjectID string, username, publicKey *string) (Account, bool, error) {
	user, created, err := a.repo.UpsertUser(ctx, subjectID, username, publicKey)
	if err != nil {
		return Account{}, false, fmt.Errorf("upsert user: %w", err)
	}

	if user.PublicKey != nil && user.Username != nil {
		a.names.Put(ctx, *user.PublicKey, *user.Username)
	}

	return accountView(user), created, nil
}

// Account looks up the registered account for the subject without creating
// one.
func (a *Accounts) Account(ctx context.Context, subjectID string) (Account, error) {
	user, err := a.repo.GetUserBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Account{}, ErrSenderNotFound
		}
		return Account{}, fmt.Errorf("get user: %w", err)
	}
	return accountView(user), nil
}

// AddContact creates an address-book entry for the caller, or returns the
// existing one when the address is already saved.
func (a *Accounts) AddContact(ctx context.Context, subjectID, username, publicKey string) (Contact, bool, error) {
	owner, err := a.repo.GetUserBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Contact{}, false, ErrSenderNotFound
		}
		return Contact{}, false, fmt.Errorf("get owner: %w", err)
	}

	contact, created, err := a.repo.CreateContact(ctx, owner.ID, username, publicKey)
	if err != nil {
		return Contact{}, false, fmt.Errorf("create contact: %w", err)
	}

	a.names.Put(ctx, publicKey, username)
	return contactView(contact), created, nil
}

// ListContacts returns the caller's address book, newest first.
func (a *Accounts) ListContacts(ctx context.Context, subjectID string) ([]Contact, error) {
	owner, err := a.repo.GetUserBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrSenderNotFound
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}

	rows, err := a.repo.ListContacts(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	contacts := make([]Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, contactView(row))
	}
	return contacts, nil
}

// AllContacts returns the caller's full address book and warms the username
// cache with every entry, so later address lookups answer without a
// repository round trip.
func (a *Accounts) AllContacts(ctx context.Context, subjectID string) ([]Contact, error) {
	contacts, err := a.ListContacts(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	for _, contact := range contacts {
		a.names.Put(ctx, contact.PublicKey, contact.Username)
	}
	return contacts, nil
}

// SearchContacts pages through the caller's contacts matching term against
// username or address.
func (a *Accounts) SearchContacts(ctx context.Context, subjectID, term string, page, limit int) (ContactPage, error) {
	owner, err := a.repo.GetUserBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ContactPage{}, ErrSenderNotFound
		}
		return ContactPage{}, fmt.Errorf("get owner: %w", err)
	}

	if page < 1 {
		page = 1
	}

	rows, total, err := a.repo.SearchContacts(ctx, owner.ID, term, page, limit)
	if err != nil {
		return ContactPage{}, fmt.Errorf("search contacts: %w", err)
	}

	contacts := make([]Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, contactView(row))
	}

	return ContactPage{
		Contacts: contacts,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// FindRecipient resolves a payment destination by wallet address,
// cache-first: a cached username answers without touching the repository,
// and a repository hit refreshes the cache.
func (a *Accounts) FindRecipient(ctx context.Context, subjectID, publicKey string) (Contact, error) {
	if username, ok := a.names.Get(ctx, publicKey); ok {
		return Contact{Username: username, PublicKey: publicKey}, nil
	}

	owner, err := a.repo.GetUserBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Contact{}, ErrSenderNotFound
		}
		return Contact{}, fmt.Errorf("get owner: %w", err)
	}

	contact, err := a.repo.GetContactByAddress(ctx, owner.ID, publicKey)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return Contact{}, ErrContactNotFound
		}
		return Contact{}, fmt.Errorf("get contact: %w", err)
	}

	a.names.Put(ctx, contact.PublicKey, contact.Username)
	return contactView(contact), nil
}

func accountView(user repository.User) Account {
	account := Account{ID: user.ID}
	if user.Username != nil {
		account.Username = *user.Username
	}
	if user.PublicKey != nil {
		account.PublicKey = *user.PublicKey
	}
	return account
}

func contactView(contact repository.Contact) Contact {
	return Contact{
		ID:        contact.ID,
		Username:  contact.Username,
		PublicKey: contact.PublicKey,
		CreatedAt: contact.CreatedAt,
	}
}
