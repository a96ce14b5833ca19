package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errInvalidValue error = errors.New("invalid configuration value")

const (
	apiPortEnvKey          = "API_PORT"
	thorNodeEnvKey         = "THOR_NODE_URL"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	dbMaxConnsEnvKey       = "DB_MAX_OPEN_CONNS"
	jwtSecretEnvKey        = "JWT_SECRET"
	jwtExpirationEnvKey    = "JWT_EXPIRATION"
	traderContractEnvKey   = "TRADER_CONTRACT_ADDRESS"
	vthoContractEnvKey     = "VTHO_CONTRACT_ADDRESS"
	paramsContractEnvKey   = "PARAMS_CONTRACT_ADDRESS"
	signerModeEnvKey       = "SIGNER_MODE"
	tosURLEnvKey           = "TOS_URL"
	relayMaxPollsEnvKey    = "TOS_MAX_POLLS"
	keystorePathEnvKey     = "KEYSTORE_PATH"
	keystorePasswordEnvKey = "KEYSTORE_PASSWORD"
	certDomainEnvKey       = "CERT_DOMAIN"
	logLevelEnvKey         = "LOG_LEVEL"
	logFileEnvKey          = "LOG_FILE"
	vthoDecimalsEnvKey     = "VTHO_DECIMALS"
	receiptAttemptsEnvKey  = "RECEIPT_MAX_ATTEMPTS"
	pollIntervalEnvKey     = "THOR_POLL_INTERVAL"
	requestTimeoutEnvKey   = "THOR_REQUEST_TIMEOUT"
)

const (
	SignerModeRelay    = "relay"
	SignerModeKeystore = "keystore"
)

type App struct {
	Port             string
	NodeURL          string
	DBConnectionURL  string
	DBMaxOpenConns   int
	JWTSecret        string
	JWTExpiration    time.Duration
	TraderAddress    string
	VTHOAddress      string
	ParamsAddress    string
	SignerMode       string
	TOSURL           string
	RelayMaxPolls    int
	KeystorePath     string
	KeystorePassword string
	CertDomain       string
	LogLevel         string
	LogFile          string
	VTHODecimals     int32
	ReceiptAttempts  int
	PollInterval     time.Duration
	RequestTimeout   time.Duration
}

// NewAppConfig resolves the configuration from the environment.
func NewAppConfig() (App, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (App, error) {
	v.AutomaticEnv()

	v.SetDefault(apiPortEnvKey, "8080")
	v.SetDefault(thorNodeEnvKey, "https://testnet.veblocks.net")
	v.SetDefault(dbMaxConnsEnvKey, 10)
	v.SetDefault(jwtExpirationEnvKey, "24h")
	v.SetDefault(vthoContractEnvKey, "0x0000000000000000000000000000456E65726779")
	v.SetDefault(paramsContractEnvKey, "0x0000000000000000000000000000506172616d73")
	v.SetDefault(signerModeEnvKey, SignerModeRelay)
	v.SetDefault(tosURLEnvKey, "https://tos.vecha.in/")
	v.SetDefault(relayMaxPollsEnvKey, 60)
	v.SetDefault(certDomainEnvKey, "vearn.app")
	v.SetDefault(logLevelEnvKey, "info")
	v.SetDefault(vthoDecimalsEnvKey, 2)
	v.SetDefault(receiptAttemptsEnvKey, 5)
	v.SetDefault(pollIntervalEnvKey, "2s")
	v.SetDefault(requestTimeoutEnvKey, "10s")

	for _, key := range []string{dbConnEnvKey, jwtSecretEnvKey, traderContractEnvKey} {
		if !v.IsSet(key) || v.GetString(key) == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
	}

	app := App{
		Port:             v.GetString(apiPortEnvKey),
		NodeURL:          v.GetString(thorNodeEnvKey),
		DBConnectionURL:  v.GetString(dbConnEnvKey),
		DBMaxOpenConns:   v.GetInt(dbMaxConnsEnvKey),
		JWTSecret:        v.GetString(jwtSecretEnvKey),
		JWTExpiration:    v.GetDuration(jwtExpirationEnvKey),
		TraderAddress:    v.GetString(traderContractEnvKey),
		VTHOAddress:      v.GetString(vthoContractEnvKey),
		ParamsAddress:    v.GetString(paramsContractEnvKey),
		SignerMode:       strings.ToLower(v.GetString(signerModeEnvKey)),
		TOSURL:           v.GetString(tosURLEnvKey),
		RelayMaxPolls:    v.GetInt(relayMaxPollsEnvKey),
		KeystorePath:     v.GetString(keystorePathEnvKey),
		KeystorePassword: v.GetString(keystorePasswordEnvKey),
		CertDomain:       v.GetString(certDomainEnvKey),
		LogLevel:         v.GetString(logLevelEnvKey),
		LogFile:          v.GetString(logFileEnvKey),
		VTHODecimals:     v.GetInt32(vthoDecimalsEnvKey),
		ReceiptAttempts:  v.GetInt(receiptAttemptsEnvKey),
		PollInterval:     v.GetDuration(pollIntervalEnvKey),
		RequestTimeout:   v.GetDuration(requestTimeoutEnvKey),
	}

	switch app.SignerMode {
	case SignerModeRelay:
	case SignerModeKeystore:
		if app.KeystorePath == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, keystorePathEnvKey)
		}
	default:
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidValue, signerModeEnvKey, app.SignerMode)
	}

	if app.JWTExpiration <= 0 {
		return App{}, fmt.Errorf("%w: %s", errInvalidValue, jwtExpirationEnvKey)
	}
	if app.VTHODecimals < 0 || app.VTHODecimals > 18 {
		return App{}, fmt.Errorf("%w: %s", errInvalidValue, vthoDecimalsEnvKey)
	}

	return app, nil
}
