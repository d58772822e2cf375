package core_test

import (
	"context"
	"errors"

	"solpay/internal/core"
	"solpay/internal/core/fake"
	"solpay/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Accounts", func() {
	var (
		accounts  *core.Accounts
		fakeRepo  *fake.AccountStore
		fakeNames *fake.NameCache
		ctx       context.Context
		fakeErr   error

		username  string
		publicKey string
		user      repository.User
	)

	BeforeEach(func() {
		fakeRepo = new(fake.AccountStore)
		fakeNames = new(fake.NameCache)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		username = "alice"
		publicKey = senderAddress
		user = repository.User{
			ID:        "user-1",
			SubjectID: "subject-1",
			Username:  &username,
			PublicKey: &publicKey,
		}

		accounts = core.NewAccounts(fakeRepo, fakeNames, zap.NewNop().Sugar())
	})

	Describe("Register", func() {
		When("the subject visits for the first time", func() {
			BeforeEach(func() {
				fakeRepo.UpsertUserReturns(user, true, nil)
			})

			It("should create the account and warm the cache", func() {
				account, created, err := accounts.Register(ctx, "subject-1", &username, &publicKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(account.ID).To(Equal("user-1"))
				Expect(account.Username).To(Equal("alice"))
				Expect(account.PublicKey).To(Equal(publicKey))

				Expect(fakeNames.PutCallCount()).To(Equal(1))
				_, address, name := fakeNames.PutArgsForCall(0)
				Expect(address).To(Equal(publicKey))
				Expect(name).To(Equal("alice"))
			})
		})

		When("the account already exists", func() {
			BeforeEach(func() {
				fakeRepo.UpsertUserReturns(user, false, nil)
			})

			It("should return it without reporting created", func() {
				_, created, err := accounts.Register(ctx, "subject-1", nil, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
			})
		})

		When("the account has no wallet address yet", func() {
			BeforeEach(func() {
				fakeRepo.UpsertUserReturns(repository.User{ID: "user-1", Username: &username}, true, nil)
			})

			It("should not warm the cache", func() {
				_, _, err := accounts.Register(ctx, "subject-1", &username, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeNames.PutCallCount()).To(Equal(0))
			})
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				fakeRepo.UpsertUserReturns(repository.User{}, false, fakeErr)
			})

			It("should return the error", func() {
				_, _, err := accounts.Register(ctx, "subject-1", nil, nil)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AddContact", func() {
		BeforeEach(func() {
			fakeRepo.GetUserBySubjectReturns(user, nil)
			fakeRepo.CreateContactReturns(repository.Contact{
				ID:        "contact-1",
				AddedByID: user.ID,
				Username:  "bob",
				PublicKey: recipientAddress,
			}, true, nil)
		})

		It("should create the contact for the caller and cache the name", func() {
			contact, created, err := accounts.AddContact(ctx, "subject-1", "bob", recipientAddress)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
			Expect(contact.Username).To(Equal("bob"))

			_, ownerID, name, address := fakeRepo.CreateContactArgsForCall(0)
			Expect(ownerID).To(Equal(user.ID))
			Expect(name).To(Equal("bob"))
			Expect(address).To(Equal(recipientAddress))

			Expect(fakeNames.PutCallCount()).To(Equal(1))
		})

		When("the address is already saved", func() {
			BeforeEach(func() {
				fakeRepo.CreateContactReturns(repository.Contact{ID: "contact-1"}, false, nil)
			})

			It("should return the existing entry", func() {
				contact, created, err := accounts.AddContact(ctx, "subject-1", "bob", recipientAddress)
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(contact.ID).To(Equal("contact-1"))
			})
		})

		When("the caller is not registered", func() {
			BeforeEach(func() {
				fakeRepo.GetUserBySubjectReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrSenderNotFound", func() {
				_, _, err := accounts.AddContact(ctx, "subject-1", "bob", recipientAddress)
				Expect(err).To(MatchError(core.ErrSenderNotFound))
				Expect(fakeRepo.CreateContactCallCount()).To(Equal(0))
			})
		})
	})

	Describe("SearchContacts", func() {
		BeforeEach(func() {
			fakeRepo.GetUserBySubjectReturns(user, nil)
			fakeRepo.SearchContactsReturns([]repository.Contact{
				{ID: "contact-1", Username: "bob"},
			}, 12, nil)
		})

		It("should return one page with the overall total", func() {
			page, err := accounts.SearchContacts(ctx, "subject-1", "bo", 2, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Contacts).To(HaveLen(1))
			Expect(page.Total).To(Equal(int64(12)))
			Expect(page.Page).To(Equal(2))
			Expect(page.Limit).To(Equal(5))

			_, ownerID, term, pageArg, limitArg := fakeRepo.SearchContactsArgsForCall(0)
			Expect(ownerID).To(Equal(user.ID))
			Expect(term).To(Equal("bo"))
			Expect(pageArg).To(Equal(2))
			Expect(limitArg).To(Equal(5))
		})

		It("should clamp a non-positive page to the first", func() {
			page, err := accounts.SearchContacts(ctx, "subject-1", "bo", 0, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Page).To(Equal(1))
		})
	})

	Describe("FindRecipient", func() {
		When("the address is cached", func() {
			BeforeEach(func() {
				fakeNames.GetReturns("bob", true)
			})

			It("should answer without touching the repository", func() {
				contact, err := accounts.FindRecipient(ctx, "subject-1", recipientAddress)
				Expect(err).NotTo(HaveOccurred())
				Expect(contact.Username).To(Equal("bob"))
				Expect(contact.PublicKey).To(Equal(recipientAddress))

				Expect(fakeRepo.GetUserBySubjectCallCount()).To(Equal(0))
				Expect(fakeRepo.GetContactByAddressCallCount()).To(Equal(0))
			})
		})

		When("the address misses the cache but matches a contact", func() {
			BeforeEach(func() {
				fakeNames.GetReturns("", false)
				fakeRepo.GetUserBySubjectReturns(user, nil)
				fakeRepo.GetContactByAddressReturns(repository.Contact{
					ID:        "contact-1",
					Username:  "bob",
					PublicKey: recipientAddress,
				}, nil)
			})

			It("should resolve through the repository and refresh the cache", func() {
				contact, err := accounts.FindRecipient(ctx, "subject-1", recipientAddress)
				Expect(err).NotTo(HaveOccurred())
				Expect(contact.Username).To(Equal("bob"))

				Expect(fakeNames.PutCallCount()).To(Equal(1))
				_, address, name := fakeNames.PutArgsForCall(0)
				Expect(address).To(Equal(recipientAddress))
				Expect(name).To(Equal("bob"))
			})
		})

		When("no contact matches the address", func() {
			BeforeEach(func() {
				fakeNames.GetReturns("", false)
				fakeRepo.GetUserBySubjectReturns(user, nil)
				fakeRepo.GetContactByAddressReturns(repository.Contact{}, repository.ErrContactNotFound)
			})

			It("should return ErrContactNotFound", func() {
				_, err := accounts.FindRecipient(ctx, "subject-1", recipientAddress)
				Expect(err).To(MatchError(core.ErrContactNotFound))
			})
		})
	})

	Describe("ListContacts", func() {
		BeforeEach(func() {
			fakeRepo.GetUserBySubjectReturns(user, nil)
			fakeRepo.ListContactsReturns([]repository.Contact{
				{ID: "contact-1"}, {ID: "contact-2"},
			}, nil)
		})

		It("should list the caller's address book", func() {
			contacts, err := accounts.ListContacts(ctx, "subject-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(contacts).To(HaveLen(2))

			_, ownerID := fakeRepo.ListContactsArgsForCall(0)
			Expect(ownerID).To(Equal(user.ID))
		})
	})

	Describe("AllContacts", func() {
		BeforeEach(func() {
			fakeRepo.GetUserBySubjectReturns(user, nil)
			fakeRepo.ListContactsReturns([]repository.Contact{
				{ID: "contact-1", Username: "bob", PublicKey: recipientAddress},
				{ID: "contact-2", Username: "carol", PublicKey: senderAddress},
			}, nil)
		})

		It("should return the address book and warm the cache for every entry", func() {
			contacts, err := accounts.AllContacts(ctx, "subject-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(contacts).To(HaveLen(2))

			Expect(fakeNames.PutCallCount()).To(Equal(2))
			_, address, name := fakeNames.PutArgsForCall(0)
			Expect(address).To(Equal(recipientAddress))
			Expect(name).To(Equal("bob"))
			_, address, name = fakeNames.PutArgsForCall(1)
			Expect(address).To(Equal(senderAddress))
			Expect(name).To(Equal("carol"))
		})

		When("the caller is not registered", func() {
			BeforeEach(func() {
				fakeRepo.GetUserBySubjectReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should report the sender as missing without touching the cache", func() {
				_, err := accounts.AllContacts(ctx, "subject-1")
				Expect(err).To(MatchError(core.ErrSenderNotFound))
				Expect(fakeNames.PutCallCount()).To(Equal(0))
			})
		})
	})
})
