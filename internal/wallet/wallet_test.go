package wallet_test

import (
	"context"
	"errors"

	"solpay/internal/solana"
	"solpay/internal/wallet"
	"solpay/internal/wallet/fake"

	solanago "github.com/gagliardetto/solana-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("KeypairSigner", func() {
	var (
		signer     *wallet.KeypairSigner
		fakeSender *fake.Sender
		keypair    *solanago.Wallet
		ctx        context.Context
		tx         *solanago.Transaction
	)

	BeforeEach(func() {
		var err error

		keypair = solanago.NewWallet()
		fakeSender = new(fake.Sender)
		ctx = context.Background()

		signer, err = wallet.NewKeypairSigner(keypair.PrivateKey.String(), fakeSender)
		Expect(err).NotTo(HaveOccurred())

		builder := solana.NewTxBuilder(nil)
		tx, err = builder.Build(
			keypair.PublicKey().String(),
			"Vote111111111111111111111111111111111111111",
			1_000_000_000,
			solana.Blockhash{Hash: solanago.Hash{1}, LastValidBlockHeight: 10},
			nil,
		)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewKeypairSigner", func() {
		When("the secret is not a valid private key", func() {
			It("should return an error", func() {
				_, err := wallet.NewKeypairSigner("garbage", fakeSender)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Address", func() {
		It("should return the keypair's public key in base58", func() {
			Expect(signer.Address()).To(Equal(keypair.PublicKey().String()))
		})
	})

	Describe("SignAndSend", func() {
		When("the broadcast succeeds", func() {
			BeforeEach(func() {
				fakeSender.SendTransactionReturns(solanago.Signature{9}, nil)
			})

			It("should sign and return the signature", func() {
				signature, err := signer.SignAndSend(ctx, tx)
				Expect(err).NotTo(HaveOccurred())
				Expect(signature).To(Equal(solanago.Signature{9}))

				Expect(fakeSender.SendTransactionCallCount()).To(Equal(1))
				_, sent := fakeSender.SendTransactionArgsForCall(0)
				Expect(sent.Signatures).To(HaveLen(1))
			})
		})

		When("the broadcast is rejected by the user", func() {
			BeforeEach(func() {
				fakeSender.SendTransactionReturns(solanago.Signature{}, errors.New("user rejected the request"))
			})

			It("should classify the error as a decline", func() {
				_, err := signer.SignAndSend(ctx, tx)
				Expect(err).To(MatchError(wallet.ErrUserDeclined))
			})
		})
	})
})

var _ = Describe("Classify", func() {
	It("should pass nil through", func() {
		Expect(wallet.Classify(nil)).To(Succeed())
	})

	It("should leave already classified errors alone", func() {
		Expect(wallet.Classify(wallet.ErrUserDeclined)).To(MatchError(wallet.ErrUserDeclined))
		Expect(wallet.Classify(wallet.ErrInvalidTransaction)).To(MatchError(wallet.ErrInvalidTransaction))
	})

	It("should map rejection messages to ErrUserDeclined", func() {
		err := wallet.Classify(errors.New("User rejected the request"))
		Expect(err).To(MatchError(wallet.ErrUserDeclined))
	})

	It("should map invalid account messages to ErrInvalidTransaction", func() {
		err := wallet.Classify(errors.New("Transaction simulation failed: invalid account data"))
		Expect(err).To(MatchError(wallet.ErrInvalidTransaction))
	})

	It("should default to ErrSigningFailed", func() {
		err := wallet.Classify(errors.New("connection reset"))
		Expect(err).To(MatchError(wallet.ErrSigningFailed))
	})
})
