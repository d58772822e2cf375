package solana_test

import (
	"context"
	"errors"

	"solpay/internal/solana"
	"solpay/internal/solana/fake"

	"github.com/gagliardetto/solana-go/rpc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const testSenderAddress = "So11111111111111111111111111111111111111112"

var _ = Describe("FeeEstimator", func() {
	var (
		estimator  *solana.FeeEstimator
		fakeClient *fake.RPCClient
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.RPCClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		estimator = solana.NewFeeEstimator(fakeClient, zap.NewNop().Sugar())
	})

	Describe("CheckAffordable", func() {
		When("the balance covers the amount", func() {
			BeforeEach(func() {
				fakeClient.GetBalanceReturns(&rpc.GetBalanceResult{Value: 2_000_000_000}, nil)
			})

			It("should report affordable", func() {
				Expect(estimator.CheckAffordable(ctx, testSenderAddress, 1_500_000_000)).To(BeTrue())

				_, account, commitment := fakeClient.GetBalanceArgsForCall(0)
				Expect(account.String()).To(Equal(testSenderAddress))
				Expect(commitment).To(Equal(rpc.CommitmentConfirmed))
			})
		})

		When("the balance equals the amount exactly", func() {
			BeforeEach(func() {
				fakeClient.GetBalanceReturns(&rpc.GetBalanceResult{Value: 1_500_000_000}, nil)
			})

			It("should report affordable", func() {
				Expect(estimator.CheckAffordable(ctx, testSenderAddress, 1_500_000_000)).To(BeTrue())
			})
		})

		When("the balance falls short", func() {
			BeforeEach(func() {
				fakeClient.GetBalanceReturns(&rpc.GetBalanceResult{Value: 100}, nil)
			})

			It("should report unaffordable", func() {
				Expect(estimator.CheckAffordable(ctx, testSenderAddress, 1_500_000_000)).To(BeFalse())
			})
		})

		When("the address is not valid base58", func() {
			It("should fail closed without querying the node", func() {
				Expect(estimator.CheckAffordable(ctx, "not-an-address", 1)).To(BeFalse())
				Expect(fakeClient.GetBalanceCallCount()).To(Equal(0))
			})
		})

		When("the balance query fails", func() {
			BeforeEach(func() {
				fakeClient.GetBalanceReturns(nil, fakeErr)
			})

			It("should fail closed", func() {
				Expect(estimator.CheckAffordable(ctx, testSenderAddress, 1)).To(BeFalse())
			})
		})
	})

	Describe("EstimatePriorityFee", func() {
		When("there is an odd number of samples", func() {
			BeforeEach(func() {
				fakeClient.GetRecentPrioritizationFeesReturns([]rpc.PriorizationFeeResult{
					{PrioritizationFee: 9000},
					{PrioritizationFee: 2000},
					{PrioritizationFee: 5000},
				}, nil)
			})

			It("should return the median", func() {
				Expect(estimator.EstimatePriorityFee(ctx)).To(Equal(uint64(5000)))
			})
		})

		When("there is an even number of samples", func() {
			BeforeEach(func() {
				fakeClient.GetRecentPrioritizationFeesReturns([]rpc.PriorizationFeeResult{
					{PrioritizationFee: 8000},
					{PrioritizationFee: 2000},
					{PrioritizationFee: 4000},
					{PrioritizationFee: 6000},
				}, nil)
			})

			It("should average the two middle samples", func() {
				Expect(estimator.EstimatePriorityFee(ctx)).To(Equal(uint64(5000)))
			})
		})

		When("the median falls below the floor", func() {
			BeforeEach(func() {
				fakeClient.GetRecentPrioritizationFeesReturns([]rpc.PriorizationFeeResult{
					{PrioritizationFee: 0},
					{PrioritizationFee: 10},
					{PrioritizationFee: 20},
				}, nil)
			})

			It("should clamp up to the floor", func() {
				Expect(estimator.EstimatePriorityFee(ctx)).To(Equal(solana.PriorityFeeFloor))
			})
		})

		When("no samples are available", func() {
			BeforeEach(func() {
				fakeClient.GetRecentPrioritizationFeesReturns([]rpc.PriorizationFeeResult{}, nil)
			})

			It("should fall back to the floor", func() {
				Expect(estimator.EstimatePriorityFee(ctx)).To(Equal(solana.PriorityFeeFloor))
			})
		})

		When("the fee query fails", func() {
			BeforeEach(func() {
				fakeClient.GetRecentPrioritizationFeesReturns(nil, fakeErr)
			})

			It("should fall back to the floor", func() {
				Expect(estimator.EstimatePriorityFee(ctx)).To(Equal(solana.PriorityFeeFloor))
			})
		})
	})
})
