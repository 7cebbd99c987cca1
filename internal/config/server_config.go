package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet/address"
	"github/chapool/mvx-signer/internal/wallet/chain"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnableSecureMiddleware         bool
	EnableCacheControlMiddleware   bool
	SecureMiddleware               EchoServerSecureMiddleware
}

// EchoServerSecureMiddleware represents a subset of echo's secure middleware config relevant to the app server.
// https://github.com/labstack/echo/blob/master/middleware/secure.go
type EchoServerSecureMiddleware struct {
	XSSProtection         string
	ContentTypeNosniff    string
	XFrameOptions         string
	HSTSMaxAge            int
	HSTSExcludeSubdomains bool
	ContentSecurityPolicy string
	CSPReportOnly         bool
	HSTSPreloadEnabled    bool
	ReferrerPolicy        string
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestHeader   bool
	LogRequestQuery    bool
	LogResponseHeader  bool
	LogCaller          bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	Secret           string `json:"-"`
	ReadinessTimeout time.Duration
	LivenessTimeout  time.Duration
	// ProbeChains are the chain ids whose network API is checked by the liveness probe
	ProbeChains      []string
}

// Signer configures how the account key is unlocked.
type Signer struct {
	DerivationPath string
	KeystorePath   string

	// Password unlocks the keystore without a prompt
	KeystorePassword string `json:"-"`
	// Mnemonic bypasses the keystore, development only
	Mnemonic   string `json:"-"`
	Passphrase string `json:"-"`
	// ScryptN of newly created keystores
	ScryptN int
}

// Network configures the MultiversX API client.
type Network struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	AllowInsecure     bool
	// APIOverrides maps chain ids to API base addresses
	APIOverrides map[string]string
}

type AuthToken struct {
	AllowedOrigins []string
}

// Confirmation configures the HTTP approval queue.
type Confirmation struct {
	// Interactive prompts on the server's terminal instead of the HTTP queue
	Interactive bool
	// OperatorSecret guards the confirmation endpoints, defaults to the management secret
	OperatorSecret string `json:"-"`
}

type Server struct {
	Echo         EchoServer
	Logger       LoggerServer
	Management   ManagementServer
	Signer       Signer
	Network      Network
	AuthToken    AuthToken
	Confirmation Confirmation
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. secrets to external APIs) and applying them modifies the process
	// global "os.Env" state (it should be applied via t.SetEnv instead).
	if !testing.Testing() {
		DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env.local"), os.Setenv)
	}

	return Server{
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", "127.0.0.1:8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			BaseURL:                        util.GetEnv("SERVER_ECHO_BASE_URL", "http://localhost:8080"),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
			EnableSecureMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_SECURE_MIDDLEWARE", true),
			EnableCacheControlMiddleware:   util.GetEnvAsBool("SERVER_ECHO_ENABLE_CACHE_CONTROL_MIDDLEWARE", true),
			// see https://echo.labstack.com/middleware/secure
			// see https://github.com/labstack/echo/blob/master/middleware/secure.go
			SecureMiddleware: EchoServerSecureMiddleware{
				XSSProtection:         util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_XSS_PROTECTION", "1; mode=block"),
				ContentTypeNosniff:    util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_CONTENT_TYPE_NOSNIFF", "nosniff"),
				XFrameOptions:         util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_X_FRAME_OPTIONS", "SAMEORIGIN"),
				HSTSMaxAge:            util.GetEnvAsInt("SERVER_ECHO_SECURE_MIDDLEWARE_HSTS_MAX_AGE", 0),
				HSTSExcludeSubdomains: util.GetEnvAsBool("SERVER_ECHO_SECURE_MIDDLEWARE_HSTS_EXCLUDE_SUBDOMAINS", false),
				ContentSecurityPolicy: util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_CONTENT_SECURITY_POLICY", ""),
				CSPReportOnly:         util.GetEnvAsBool("SERVER_ECHO_SECURE_MIDDLEWARE_CSP_REPORT_ONLY", false),
				HSTSPreloadEnabled:    util.GetEnvAsBool("SERVER_ECHO_SECURE_MIDDLEWARE_HSTS_PRELOAD_ENABLED", false),
				ReferrerPolicy:        util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_REFERRER_POLICY", ""),
			},
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnvEnum("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String(), util.LogLevels)),
			RequestLevel:       util.LogLevelFromString(util.GetEnvEnum("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String(), util.LogLevels)),
			LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
			LogRequestQuery:    util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_QUERY", false),
			LogResponseHeader:  util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_HEADER", false),
			LogCaller:          util.GetEnvAsBool("SERVER_LOGGER_LOG_CALLER", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Management: ManagementServer{
			Secret:           util.GetMgmtSecret("SERVER_MANAGEMENT_SECRET"),
			ReadinessTimeout: util.GetEnvAsDuration("SERVER_MANAGEMENT_READINESS_TIMEOUT", 4*time.Second),
			LivenessTimeout:  util.GetEnvAsDuration("SERVER_MANAGEMENT_LIVENESS_TIMEOUT", 9*time.Second),
			ProbeChains:      util.GetEnvAsStringArr("SERVER_MANAGEMENT_PROBE_CHAINS", []string{chain.ChainIDMainnet}),
		},
		Signer: Signer{
			DerivationPath:   util.GetEnv("SERVER_SIGNER_DERIVATION_PATH", address.DefaultDerivationPath),
			KeystorePath:     util.GetEnv("SERVER_SIGNER_KEYSTORE_PATH", filepath.Join(util.GetProjectRootDir(), "keystore.json")),
			KeystorePassword: util.GetEnv("SERVER_SIGNER_KEYSTORE_PASSWORD", ""),
			Mnemonic:         util.GetEnv("SERVER_SIGNER_MNEMONIC", ""),
			Passphrase:       util.GetEnv("SERVER_SIGNER_PASSPHRASE", ""),
			ScryptN:          util.GetEnvAsInt("SERVER_SIGNER_SCRYPT_N", 262144),
		},
		Network: Network{
			Timeout:           util.GetEnvAsDuration("SERVER_NETWORK_TIMEOUT", 10*time.Second),
			RequestsPerSecond: util.GetEnvAsFloat("SERVER_NETWORK_REQUESTS_PER_SECOND", 10),
			Burst:             util.GetEnvAsInt("SERVER_NETWORK_BURST", 5),
			AllowInsecure:     util.GetEnvAsBool("SERVER_NETWORK_ALLOW_INSECURE", false),
			APIOverrides:      chain.ParseAPIOverrides(util.GetEnv("SERVER_NETWORK_API_OVERRIDES", "")),
		},
		AuthToken: AuthToken{
			AllowedOrigins: util.GetEnvAsStringArr("SERVER_AUTH_TOKEN_ALLOWED_ORIGINS", []string{}),
		},
		Confirmation: Confirmation{
			Interactive:    util.GetEnvAsBool("SERVER_CONFIRMATION_INTERACTIVE", false),
			OperatorSecret: util.GetEnv("SERVER_CONFIRMATION_OPERATOR_SECRET", util.GetMgmtSecret("SERVER_MANAGEMENT_SECRET")),
		},
	}
}
