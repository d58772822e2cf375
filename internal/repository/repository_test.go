package repository_test

import (
	"context"
	"errors"

	"solpay/internal/db"
	"solpay/internal/repository"
	"solpay/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PaymentRepository", func() {
	var (
		repo        *repository.PaymentRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewPaymentRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		It("should migrate all four tables", func() {
			fakeStorage.MigrateTableReturns(nil)

			Expect(repo.MigrateTables()).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(4))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Contact{}))
			Expect(tables[2]).To(BeAssignableToTypeOf(&repository.PendingPayment{}))
			Expect(tables[3]).To(BeAssignableToTypeOf(&repository.Transaction{}))
		})

		It("should propagate migration failures", func() {
			fakeStorage.MigrateTableReturns(fakeErr)
			Expect(repo.MigrateTables()).To(MatchError(fakeErr))
		})
	})

	Describe("UpsertUser", func() {
		var (
			username  string
			publicKey string
		)

		BeforeEach(func() {
			username = "alice"
			publicKey = "addr-1"
		})

		When("the subject already has a row", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByCalls(func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("subject_id"))
					Expect(value).To(Equal("subject-1"))
					*entity.(*repository.User) = repository.User{ID: "existing", SubjectID: "subject-1"}
					return nil
				})
			})

			It("should return it without inserting", func() {
				user, created, err := repo.UpsertUser(ctx, "subject-1", &username, &publicKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(user.ID).To(Equal("existing"))
				Expect(fakeStorage.CreateIgnoreCallCount()).To(Equal(0))
			})
		})

		When("the subject is new", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
				fakeStorage.CreateIgnoreReturns(true, nil)
			})

			It("should insert a row keyed on the subject id", func() {
				user, created, err := repo.UpsertUser(ctx, "subject-1", &username, &publicKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(user.ID).NotTo(BeEmpty())
				Expect(user.SubjectID).To(Equal("subject-1"))
				Expect(*user.Username).To(Equal("alice"))

				_, record, conflictCols := fakeStorage.CreateIgnoreArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(conflictCols).To(Equal([]string{"subject_id"}))
			})
		})

		When("a concurrent first visit wins the insert race", func() {
			BeforeEach(func() {
				calls := 0
				fakeStorage.GetOneByCalls(func(_ context.Context, _ string, _ any, entity any) error {
					calls++
					if calls == 1 {
						return db.ErrNotFound
					}
					*entity.(*repository.User) = repository.User{ID: "winner", SubjectID: "subject-1"}
					return nil
				})
				fakeStorage.CreateIgnoreReturns(false, nil)
			})

			It("should return the winner's row", func() {
				user, created, err := repo.UpsertUser(ctx, "subject-1", &username, &publicKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(user.ID).To(Equal("winner"))
			})
		})
	})

	Describe("GetUserBySubject", func() {
		When("no row exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := repo.GetUserBySubject(ctx, "subject-1")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateContact", func() {
		When("the address is new for the owner", func() {
			BeforeEach(func() {
				fakeStorage.CreateIgnoreReturns(true, nil)
			})

			It("should insert guarded by the owner-address index", func() {
				contact, created, err := repo.CreateContact(ctx, "owner-1", "bob", "addr-2")
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(contact.AddedByID).To(Equal("owner-1"))
				Expect(contact.PublicKey).To(Equal("addr-2"))

				_, _, conflictCols := fakeStorage.CreateIgnoreArgsForCall(0)
				Expect(conflictCols).To(Equal([]string{"added_by_id", "public_key"}))
			})
		})

		When("the pair already exists", func() {
			BeforeEach(func() {
				fakeStorage.CreateIgnoreReturns(false, nil)
				fakeStorage.FindWhereCalls(func(_ context.Context, dest any, _ string, conds map[string]any, _ ...string) error {
					Expect(conds["added_by_id"]).To(Equal("owner-1"))
					Expect(conds["public_key"]).To(Equal("addr-2"))
					*dest.(*[]repository.Contact) = []repository.Contact{{ID: "existing-contact"}}
					return nil
				})
			})

			It("should fetch and return the existing row", func() {
				contact, created, err := repo.CreateContact(ctx, "owner-1", "bob", "addr-2")
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(contact.ID).To(Equal("existing-contact"))
			})
		})
	})

	Describe("GetContactByAddress", func() {
		When("no contact matches", func() {
			It("should return ErrContactNotFound", func() {
				_, err := repo.GetContactByAddress(ctx, "owner-1", "addr-2")
				Expect(err).To(MatchError(repository.ErrContactNotFound))
			})
		})
	})

	Describe("SearchContacts", func() {
		BeforeEach(func() {
			fakeStorage.SearchPageReturns(17, nil)
		})

		It("should page with a computed offset over both columns", func() {
			_, total, err := repo.SearchContacts(ctx, "owner-1", "bo", 3, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(17)))

			_, _, conds, columns, term, order, offset, limit := fakeStorage.SearchPageArgsForCall(0)
			Expect(conds["added_by_id"]).To(Equal("owner-1"))
			Expect(columns).To(Equal([]string{"username", "public_key"}))
			Expect(term).To(Equal("bo"))
			Expect(order).To(Equal("created_at DESC"))
			Expect(offset).To(Equal(10))
			Expect(limit).To(Equal(5))
		})
	})

	Describe("CreatePendingRequest", func() {
		It("should insert an unsettled row with a fresh id", func() {
			request, err := repo.CreatePendingRequest(ctx, "user-1", "addr-1", "addr-2", "1.5", "lunch")
			Expect(err).NotTo(HaveOccurred())
			Expect(request.ID).NotTo(BeEmpty())
			Expect(request.IsCompleted).To(BeFalse())
			Expect(request.SenderPublicKey).To(Equal("addr-1"))

			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
		})
	})

	Describe("ListUnsettledByRecipient", func() {
		It("should filter on recipient and completion, preloading the sender", func() {
			_, err := repo.ListUnsettledByRecipient(ctx, "addr-2")
			Expect(err).NotTo(HaveOccurred())

			_, _, order, conds, preloads := fakeStorage.FindWhereArgsForCall(0)
			Expect(order).To(Equal("created_at DESC"))
			Expect(conds["recipient_public_key"]).To(Equal("addr-2"))
			Expect(conds["is_completed"]).To(Equal(false))
			Expect(preloads).To(Equal([]string{"Sender"}))
		})
	})

	Describe("SettlePendingRequests", func() {
		BeforeEach(func() {
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		It("should flip is_completed inside a single guarded update", func() {
			count, err := repo.SettlePendingRequests(ctx, "addr-2", "addr-1", "1.5")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))

			_, _, conds, updates := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(conds["recipient_public_key"]).To(Equal("addr-2"))
			Expect(conds["sender_public_key"]).To(Equal("addr-1"))
			Expect(conds["amount"]).To(Equal("1.5"))
			Expect(conds["is_completed"]).To(Equal(false))
			Expect(updates).To(Equal(map[string]any{"is_completed": true}))
		})

		When("nothing matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should report zero rows without error", func() {
				count, err := repo.SettlePendingRequests(ctx, "addr-2", "addr-1", "1.5")
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(BeZero())
			})
		})
	})

	Describe("SaveTransaction", func() {
		BeforeEach(func() {
			fakeStorage.CreateIgnoreReturns(true, nil)
		})

		It("should default the id and priority fee before inserting", func() {
			created, err := repo.SaveTransaction(ctx, repository.Transaction{
				Signature: "sig-1",
				From:      "addr-1",
				To:        "addr-2",
				Amount:    "1.5",
				UserID:    "user-1",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			_, record, conflictCols := fakeStorage.CreateIgnoreArgsForCall(0)
			saved := record.(*repository.Transaction)
			Expect(saved.ID).NotTo(BeEmpty())
			Expect(saved.PriorityFee).To(Equal("disabled"))
			Expect(conflictCols).To(Equal([]string{"signature"}))
		})

		When("the signature already exists", func() {
			BeforeEach(func() {
				fakeStorage.CreateIgnoreReturns(false, nil)
			})

			It("should report no write without error", func() {
				created, err := repo.SaveTransaction(ctx, repository.Transaction{Signature: "sig-1"})
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateIgnoreReturns(false, fakeErr)
			})

			It("should return the error", func() {
				_, err := repo.SaveTransaction(ctx, repository.Transaction{Signature: "sig-1"})
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
