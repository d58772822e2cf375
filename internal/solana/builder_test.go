package solana_test

import (
	"context"
	"encoding/binary"
	"errors"

	"solpay/internal/solana"
	"solpay/internal/solana/fake"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testRecipientAddress = "Vote111111111111111111111111111111111111111"

var _ = Describe("TxBuilder", func() {
	var (
		builder    *solana.TxBuilder
		fakeClient *fake.RPCClient
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.RPCClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		builder = solana.NewTxBuilder(fakeClient)
	})

	Describe("RecentBlockhash", func() {
		When("the node answers", func() {
			BeforeEach(func() {
				fakeClient.GetLatestBlockhashReturns(&rpc.GetLatestBlockhashResult{
					Value: &rpc.LatestBlockhashResult{
						Blockhash:            solanago.Hash{1, 2, 3},
						LastValidBlockHeight: 500,
					},
				}, nil)
			})

			It("should return the hash and its expiry height", func() {
				bh, err := builder.RecentBlockhash(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(bh.Hash).To(Equal(solanago.Hash{1, 2, 3}))
				Expect(bh.LastValidBlockHeight).To(Equal(uint64(500)))

				_, commitment := fakeClient.GetLatestBlockhashArgsForCall(0)
				Expect(commitment).To(Equal(rpc.CommitmentConfirmed))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeClient.GetLatestBlockhashReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := builder.RecentBlockhash(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Build", func() {
		var bh solana.Blockhash

		BeforeEach(func() {
			bh = solana.Blockhash{
				Hash:                 solanago.Hash{1, 2, 3},
				LastValidBlockHeight: 500,
			}
		})

		When("no priority fee is requested", func() {
			It("should produce a single transfer instruction", func() {
				tx, err := builder.Build(testSenderAddress, testRecipientAddress, 1_500_000_000, bh, nil)
				Expect(err).NotTo(HaveOccurred())

				Expect(tx.Message.Instructions).To(HaveLen(1))
				Expect(tx.Message.RecentBlockhash).To(Equal(bh.Hash))
				Expect(tx.Message.AccountKeys[0].String()).To(Equal(testSenderAddress))
			})
		})

		When("a priority fee is requested", func() {
			It("should prepend compute budget instructions", func() {
				fee := uint64(7500)
				tx, err := builder.Build(testSenderAddress, testRecipientAddress, 1_500_000_000, bh, &fee)
				Expect(err).NotTo(HaveOccurred())

				Expect(tx.Message.Instructions).To(HaveLen(3))

				budget := solanago.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")

				limit := tx.Message.Instructions[0]
				Expect(tx.Message.AccountKeys[limit.ProgramIDIndex]).To(Equal(budget))
				Expect(limit.Data[0]).To(Equal(byte(2)))

				price := tx.Message.Instructions[1]
				Expect(tx.Message.AccountKeys[price.ProgramIDIndex]).To(Equal(budget))
				Expect(price.Data[0]).To(Equal(byte(3)))
				Expect(binary.LittleEndian.Uint64(price.Data[1:])).To(Equal(fee))
			})
		})

		When("the recipient address is invalid", func() {
			It("should return ErrInvalidRecipient", func() {
				_, err := builder.Build(testSenderAddress, "nope", 1, bh, nil)
				Expect(err).To(MatchError(solana.ErrInvalidRecipient))
			})
		})

		When("the sender address is invalid", func() {
			It("should return ErrInvalidSender", func() {
				_, err := builder.Build("nope", testRecipientAddress, 1, bh, nil)
				Expect(err).To(MatchError(solana.ErrInvalidSender))
			})
		})

		When("the amount is zero lamports", func() {
			It("should return ErrInvalidAmount", func() {
				_, err := builder.Build(testSenderAddress, testRecipientAddress, 0, bh, nil)
				Expect(err).To(MatchError(solana.ErrInvalidAmount))
			})
		})
	})
})
