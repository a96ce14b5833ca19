package server_test

import (
	"net"
	"net/http"
	"strconv"
	"vearn/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	var port string

	BeforeEach(func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		port = strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
		Expect(l.Close()).To(Succeed())
	})

	It("serves until shut down", func() {
		hdlr := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		srv := server.NewHTTP(zap.NewNop().Sugar(), hdlr, port)
		errChan := srv.Run()

		Eventually(func() (int, error) {
			resp, err := http.Get("http://127.0.0.1:" + port + "/")
			if err != nil {
				return 0, err
			}
			defer resp.Body.Close()
			return resp.StatusCode, nil
		}).Should(Equal(http.StatusNoContent))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
