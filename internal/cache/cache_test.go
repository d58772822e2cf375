package cache_test

import (
	"context"

	"solpay/internal/cache"
	"solpay/internal/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("UsernameCache", func() {
	var (
		names *cache.UsernameCache
		ctx   context.Context
	)

	When("no address is configured", func() {
		BeforeEach(func() {
			ctx = context.Background()
			names = cache.NewUsernameCache("", "", zap.NewNop().Sugar(), metrics.Registry("solpay"))
		})

		It("should always miss on Get", func() {
			username, ok := names.Get(ctx, "So11111111111111111111111111111111111111112")
			Expect(ok).To(BeFalse())
			Expect(username).To(BeEmpty())
		})

		It("should ignore Put", func() {
			names.Put(ctx, "So11111111111111111111111111111111111111112", "alice")

			_, ok := names.Get(ctx, "So11111111111111111111111111111111111111112")
			Expect(ok).To(BeFalse())
		})

		It("should report healthy on Ping", func() {
			Expect(names.Ping(ctx)).To(Succeed())
		})
	})
})
