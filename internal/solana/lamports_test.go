package solana_test

import (
	"solpay/internal/solana"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LamportsFromSOL", func() {
	When("the amount is a whole number", func() {
		It("should convert to lamports exactly", func() {
			lamports, err := solana.LamportsFromSOL("2")
			Expect(err).NotTo(HaveOccurred())
			Expect(lamports).To(Equal(uint64(2_000_000_000)))
		})
	})

	When("the amount has a fractional part", func() {
		It("should convert without float rounding", func() {
			lamports, err := solana.LamportsFromSOL("1.5")
			Expect(err).NotTo(HaveOccurred())
			Expect(lamports).To(Equal(uint64(1_500_000_000)))
		})

		It("should handle the full nine decimals", func() {
			lamports, err := solana.LamportsFromSOL("0.000000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(lamports).To(Equal(uint64(1)))
		})

		It("should accept a leading dot", func() {
			lamports, err := solana.LamportsFromSOL(".25")
			Expect(err).NotTo(HaveOccurred())
			Expect(lamports).To(Equal(uint64(250_000_000)))
		})
	})

	When("the amount is not a positive number", func() {
		It("should reject zero", func() {
			_, err := solana.LamportsFromSOL("0")
			Expect(err).To(MatchError(solana.ErrInvalidAmount))
		})

		It("should reject an empty string", func() {
			_, err := solana.LamportsFromSOL("")
			Expect(err).To(MatchError(solana.ErrInvalidAmount))
		})

		It("should reject negative values", func() {
			_, err := solana.LamportsFromSOL("-1")
			Expect(err).To(MatchError(solana.ErrInvalidAmount))
		})

		It("should reject non-numeric input", func() {
			_, err := solana.LamportsFromSOL("abc")
			Expect(err).To(MatchError(solana.ErrInvalidAmount))
		})
	})

	When("the amount has sub-lamport precision", func() {
		It("should reject rather than round", func() {
			_, err := solana.LamportsFromSOL("0.0000000001")
			Expect(err).To(MatchError(solana.ErrInvalidAmount))
		})
	})

	When("the amount overflows uint64", func() {
		It("should return an error", func() {
			_, err := solana.LamportsFromSOL("99999999999999999999")
			Expect(err).To(MatchError(solana.ErrInvalidAmount))
		})

		It("should catch the fraction pushing the sum past the limit", func() {
			_, err := solana.LamportsFromSOL("18446744073.999999999")
			Expect(err).To(MatchError(solana.ErrInvalidAmount))
		})

		It("should still accept the largest representable amount", func() {
			lamports, err := solana.LamportsFromSOL("18446744073.709551615")
			Expect(err).NotTo(HaveOccurred())
			Expect(lamports).To(Equal(uint64(18_446_744_073_709_551_615)))
		})
	})
})
