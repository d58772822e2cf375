package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"solpay/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	testRecipient = "Vote111111111111111111111111111111111111111"
	testSender    = "So11111111111111111111111111111111111111112"
)

var _ = Describe("DecodeValidator", func() {
	var (
		dv  payload.DecodeValidator
		req *http.Request
	)

	newRequest := func(body string) *http.Request {
		return httptest.NewRequest("POST", "/", strings.NewReader(body))
	}

	When("the payload is well formed", func() {
		BeforeEach(func() {
			req = newRequest(`{"username":"bob","publicKey":"` + testRecipient + `"}`)
		})

		It("should decode into the target", func() {
			var contact payload.ContactRequest
			err := dv.DecodeAndValidateJSONPayload(req, &contact)
			Expect(err).NotTo(HaveOccurred())
			Expect(contact.Username).To(Equal("bob"))
			Expect(contact.PublicKey).To(Equal(testRecipient))
		})
	})

	When("the payload carries unknown fields", func() {
		BeforeEach(func() {
			req = newRequest(`{"username":"bob","publicKey":"` + testRecipient + `","extra":true}`)
		})

		It("should reject it", func() {
			var contact payload.ContactRequest
			err := dv.DecodeAndValidateJSONPayload(req, &contact)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("decoding json payload"))
		})
	})

	When("the decoded payload fails its own validation", func() {
		BeforeEach(func() {
			req = newRequest(`{"username":"","publicKey":""}`)
		})

		It("should surface the validation error", func() {
			var contact payload.ContactRequest
			err := dv.DecodeAndValidateJSONPayload(req, &contact)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validating payload"))
		})
	})

	When("the target has no validation rules", func() {
		BeforeEach(func() {
			req = newRequest(`{"anything":"goes"}`)
		})

		It("should accept it as-is", func() {
			var target struct {
				Anything string `json:"anything"`
			}
			err := dv.DecodeAndValidateJSONPayload(req, &target)
			Expect(err).NotTo(HaveOccurred())
			Expect(target.Anything).To(Equal("goes"))
		})
	})
})

var _ = Describe("CreatePaymentRequest", func() {
	var p payload.CreatePaymentRequest

	BeforeEach(func() {
		p = payload.CreatePaymentRequest{
			RecipientPublicKey: testRecipient,
			Amount:             "1.5",
			Description:        "lunch",
		}
	})

	It("should accept a complete request", func() {
		Expect(p.Validate()).To(Succeed())
	})

	It("should accept an empty description", func() {
		p.Description = ""
		Expect(p.Validate()).To(Succeed())
	})

	It("should require a recipient", func() {
		p.RecipientPublicKey = ""
		Expect(p.Validate()).To(HaveOccurred())
	})

	It("should reject a recipient that is too short", func() {
		p.RecipientPublicKey = "short"
		Expect(p.Validate()).To(HaveOccurred())
	})

	DescribeTable("amount validation",
		func(amount string, valid bool) {
			p.Amount = amount
			err := p.Validate()
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("whole number", "2", true),
		Entry("nine decimals", "0.000000001", true),
		Entry("zero", "0", false),
		Entry("zero with decimals", "0.000", false),
		Entry("empty", "", false),
		Entry("not a number", "abc", false),
		Entry("negative", "-1", false),
		Entry("ten decimals", "1.1234567891", false),
	)
})

var _ = Describe("SettlePaymentRequest", func() {
	var p payload.SettlePaymentRequest

	BeforeEach(func() {
		p = payload.SettlePaymentRequest{
			RecipientPublicKey: testRecipient,
			SenderPublicKey:    testSender,
			Amount:             "1.5",
		}
	})

	It("should accept a complete request", func() {
		Expect(p.Validate()).To(Succeed())
	})

	It("should require the sender", func() {
		p.SenderPublicKey = ""
		Expect(p.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("StoreTransactionRequest", func() {
	var p payload.StoreTransactionRequest

	BeforeEach(func() {
		p = payload.StoreTransactionRequest{
			Signature:   strings.Repeat("s", 64),
			From:        testSender,
			To:          testRecipient,
			Amount:      "1.5",
			PriorityFee: "2000",
		}
	})

	It("should accept a complete request", func() {
		Expect(p.Validate()).To(Succeed())
	})

	It("should accept the longest signature encoding", func() {
		p.Signature = strings.Repeat("s", 88)
		Expect(p.Validate()).To(Succeed())
	})

	It("should reject a truncated signature", func() {
		p.Signature = strings.Repeat("s", 63)
		Expect(p.Validate()).To(HaveOccurred())
	})

	It("should allow the priority fee to be omitted", func() {
		p.PriorityFee = ""
		Expect(p.Validate()).To(Succeed())
	})
})

var _ = Describe("SendPaymentRequest", func() {
	var p payload.SendPaymentRequest

	BeforeEach(func() {
		p = payload.SendPaymentRequest{
			Recipient:      testRecipient,
			Amount:         "1.5",
			Description:    "lunch",
			UsePriorityFee: true,
			SettleRequest:  true,
		}
	})

	It("should accept a complete request", func() {
		Expect(p.Validate()).To(Succeed())
	})

	It("should require the recipient", func() {
		p.Recipient = ""
		Expect(p.Validate()).To(HaveOccurred())
	})

	Describe("ToSubmission", func() {
		It("should carry every field plus the user", func() {
			sub := p.ToSubmission("user-1")
			Expect(sub.UserID).To(Equal("user-1"))
			Expect(sub.Recipient).To(Equal(testRecipient))
			Expect(sub.Amount).To(Equal("1.5"))
			Expect(sub.Description).To(Equal("lunch"))
			Expect(sub.UsePriorityFee).To(BeTrue())
			Expect(sub.SettleRequest).To(BeTrue())
		})
	})
})

var _ = Describe("UpsertUserRequest", func() {
	It("should accept empty optional fields", func() {
		Expect(payload.UpsertUserRequest{}.Validate()).To(Succeed())
	})

	It("should reject a public key of the wrong length", func() {
		u := payload.UpsertUserRequest{PublicKey: "short"}
		Expect(u.Validate()).To(HaveOccurred())
	})

	Describe("UsernamePtr", func() {
		It("should return nil when no username was supplied", func() {
			Expect(payload.UpsertUserRequest{}.UsernamePtr()).To(BeNil())
		})

		It("should return the username otherwise", func() {
			ptr := payload.UpsertUserRequest{Username: "alice"}.UsernamePtr()
			Expect(ptr).NotTo(BeNil())
			Expect(*ptr).To(Equal("alice"))
		})
	})

	Describe("PublicKeyPtr", func() {
		It("should return nil when no key was supplied", func() {
			Expect(payload.UpsertUserRequest{}.PublicKeyPtr()).To(BeNil())
		})

		It("should return the key otherwise", func() {
			ptr := payload.UpsertUserRequest{PublicKey: testSender}.PublicKeyPtr()
			Expect(ptr).NotTo(BeNil())
			Expect(*ptr).To(Equal(testSender))
		})
	})
})
