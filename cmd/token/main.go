// Command token issues a bearer token for one device owner, signed with the
// server's key. The owner id is taken from TOKEN_OWNER_ID; every other
// setting comes from the regular server configuration.
//
//	TOKEN_OWNER_ID=household-1 APP_TOKEN_SIGN_KEY=secret STORAGE_DB_DATABASE_URI=postgres://... token
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/utils"
)

func main() {
	log := logger.NewLogger("budget-vault-token")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ownerID := os.Getenv("TOKEN_OWNER_ID")
	if ownerID == "" {
		log.Fatal().Msg("TOKEN_OWNER_ID is required")
	}

	token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, ownerID, cfg.App.TokenDuration, cfg.App.TokenSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error issuing token")
	}

	event := log.Info().Str("owner_id", ownerID)
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		event = event.Time("expires_at", exp.Time)
	}
	event.Msg("token issued")
	fmt.Println(token.SignedString)
}
