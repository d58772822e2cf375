package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"solpay/internal/core"
	"solpay/internal/http/handler"
	"solpay/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("UserHandler", func() {
	var (
		uh            *handler.UserHandler
		fakeAccounts  *fake.AccountService
		fakeValidator *fake.RequestValidator
		fakeSessions  *fake.SessionValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeAccounts = new(fake.AccountService)
		fakeValidator = new(fake.RequestValidator)
		fakeSessions = new(fake.SessionValidator)
		fakeSessions.ValidateReturns("subject-1", nil)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		uh = handler.NewUserHandler(zap.NewNop().Sugar(), fakeValidator, fakeSessions, fakeAccounts)
	})

	Describe("HandleUpsertUser", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","publicKey":"So11111111111111111111111111111111111111112"}`)
			req = httptest.NewRequest("POST", "/api/users", body)
			req.Header.Set("Authorization", "Bearer test-token")

			fakeAccounts.RegisterReturns(core.Account{ID: "user-1", Username: "alice"}, true, nil)
		})

		JustBeforeEach(func() {
			uh.HandleUpsertUser(w, req)
		})

		When("the user registers for the first time", func() {
			It("should return 201 with the account", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring("alice"))

				Expect(fakeSessions.ValidateArgsForCall(0)).To(Equal("test-token"))

				_, subject, username, publicKey := fakeAccounts.RegisterArgsForCall(0)
				Expect(subject).To(Equal("subject-1"))
				Expect(*username).To(Equal("alice"))
				Expect(*publicKey).To(Equal("So11111111111111111111111111111111111111112"))
			})
		})

		When("the user already exists", func() {
			BeforeEach(func() {
				fakeAccounts.RegisterReturns(core.Account{ID: "user-1"}, false, nil)
			})

			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
			})
		})

		When("no bearer token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401 without registering", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("Authentication required"))
				Expect(fakeAccounts.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the session is invalid", func() {
			BeforeEach(func() {
				fakeSessions.ValidateReturns("", fakeErr)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeAccounts.RegisterCallCount()).To(Equal(0))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeAccounts.RegisterCallCount()).To(Equal(0))
			})
		})

		When("registration fails", func() {
			BeforeEach(func() {
				fakeAccounts.RegisterReturns(core.Account{}, false, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreateContact", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"bob","publicKey":"Vote111111111111111111111111111111111111111"}`)
			req = httptest.NewRequest("POST", "/api/users/contact", body)
			req.Header.Set("Authorization", "Bearer test-token")

			fakeAccounts.AddContactReturns(core.Contact{ID: "contact-1", Username: "bob"}, true, nil)
		})

		JustBeforeEach(func() {
			uh.HandleCreateContact(w, req)
		})

		When("the contact is new", func() {
			It("should return 201", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				_, subject, username, publicKey := fakeAccounts.AddContactArgsForCall(0)
				Expect(subject).To(Equal("subject-1"))
				Expect(username).To(Equal("bob"))
				Expect(publicKey).To(Equal("Vote111111111111111111111111111111111111111"))
			})
		})

		When("the address was already saved", func() {
			BeforeEach(func() {
				fakeAccounts.AddContactReturns(core.Contact{ID: "contact-1"}, false, nil)
			})

			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
			})
		})

		When("the caller is not registered", func() {
			BeforeEach(func() {
				fakeAccounts.AddContactReturns(core.Contact{}, false, core.ErrSenderNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleListContacts", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/users/contact", nil)
			req.Header.Set("Authorization", "Bearer test-token")
		})

		JustBeforeEach(func() {
			uh.HandleListContacts(w, req)
		})

		When("contacts exist", func() {
			BeforeEach(func() {
				fakeAccounts.ListContactsReturns([]core.Contact{
					{ID: "contact-1", Username: "bob"},
					{ID: "contact-2", Username: "carol"},
				}, nil)
			})

			It("should return them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("bob"))
				Expect(w.Body.String()).To(ContainSubstring("carol"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeAccounts.ListContactsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleAllContacts", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/users/all", nil)
			req.Header.Set("Authorization", "Bearer test-token")
		})

		JustBeforeEach(func() {
			uh.HandleAllContacts(w, req)
		})

		When("the address book loads", func() {
			BeforeEach(func() {
				fakeAccounts.AllContactsReturns([]core.Contact{
					{ID: "contact-1", Username: "bob"},
					{ID: "contact-2", Username: "carol"},
				}, nil)
			})

			It("should return every contact", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("bob"))
				Expect(w.Body.String()).To(ContainSubstring("carol"))

				_, subject := fakeAccounts.AllContactsArgsForCall(0)
				Expect(subject).To(Equal("subject-1"))
			})
		})

		When("the caller is not registered", func() {
			BeforeEach(func() {
				fakeAccounts.AllContactsReturns(nil, core.ErrSenderNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeAccounts.AllContactsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleSearchContacts", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/users/search?query=bo&page=2&limit=5", nil)
			req.Header.Set("Authorization", "Bearer test-token")

			fakeAccounts.SearchContactsReturns(core.ContactPage{
				Contacts: []core.Contact{{Username: "bob"}},
				Total:    1,
				Page:     2,
				Limit:    5,
			}, nil)
		})

		JustBeforeEach(func() {
			uh.HandleSearchContacts(w, req)
		})

		It("should pass the paging parameters through", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, subject, term, page, limit := fakeAccounts.SearchContactsArgsForCall(0)
			Expect(subject).To(Equal("subject-1"))
			Expect(term).To(Equal("bo"))
			Expect(page).To(Equal(2))
			Expect(limit).To(Equal(5))
		})

		When("no limit is given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/users/search?query=bo", nil)
				req.Header.Set("Authorization", "Bearer test-token")
			})

			It("should apply the default", func() {
				_, _, _, _, limit := fakeAccounts.SearchContactsArgsForCall(0)
				Expect(limit).To(Equal(7))
			})
		})

		When("the query is too short", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/users/search?query=b", nil)
				req.Header.Set("Authorization", "Bearer test-token")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeAccounts.SearchContactsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleSearchRecipient", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/users/searchreceipent?query=Vote111111111111111111111111111111111111111", nil)
			req.Header.Set("Authorization", "Bearer test-token")
		})

		JustBeforeEach(func() {
			uh.HandleSearchRecipient(w, req)
		})

		When("the address resolves", func() {
			BeforeEach(func() {
				fakeAccounts.FindRecipientReturns(core.Contact{Username: "bob"}, nil)
			})

			It("should return the contact", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("bob"))

				_, _, publicKey := fakeAccounts.FindRecipientArgsForCall(0)
				Expect(publicKey).To(Equal("Vote111111111111111111111111111111111111111"))
			})
		})

		When("no contact matches", func() {
			BeforeEach(func() {
				fakeAccounts.FindRecipientReturns(core.Contact{}, core.ErrContactNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
