package jwt_test

import (
	"time"
	"vearn/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testAccount = "0x970248543238481b2ac9144a99cf7f47e28a90e0"

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		now     time.Time
	)

	BeforeEach(func() {
		now = time.Unix(1700000000, 0)
		jwt.TimeNow = func() time.Time { return now }
		service = jwt.NewJWTService([]byte("secret"))
	})

	AfterEach(func() {
		jwt.TimeNow = time.Now
	})

	It("round trips the account as subject", func() {
		token, err := service.Issue(jwt.TokenInfo{Subject: testAccount, WalletID: "sync2", Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["wallet"]).To(Equal("sync2"))

		sub, err := service.Subject(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal(testAccount))
	})

	It("rejects expired tokens", func() {
		token, err := service.Issue(jwt.TokenInfo{Subject: testAccount, Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		now = now.Add(2 * time.Hour)
		_, err = service.Subject(token)
		Expect(err).To(MatchError(jwt.ErrTokenExpired))
	})

	It("rejects tokens signed with another secret", func() {
		token, err := jwt.NewJWTService([]byte("other")).Issue(jwt.TokenInfo{Subject: testAccount, Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})

	It("rejects garbage", func() {
		_, err := service.Subject("not-a-token")
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})

	It("requires a subject", func() {
		token, err := service.Issue(jwt.TokenInfo{Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Subject(token)
		Expect(err).To(MatchError(jwt.ErrMissingSubject))
	})
})
