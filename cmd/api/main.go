// Package main Reward Wallet API
//
// Reward Wallet runs small real-money games for verified players. It owns the player
// wallet, which is split into bonus, deposit and winning balances, and:
//
//  1. Signs players up and in with emailed one-time passcodes.
//
//  2. Plays number guess and spin wheel rounds against the wallet, takes deposits
//     through Razorpay and pays winnings out through reviewed withdrawal requests.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
package main

import (
	"context"

	_ "github.com/saradorri/rewardwallet/docs"
	"github.com/saradorri/rewardwallet/internal/app"
)

// @title Reward Wallet API Service
// @version 1.0
// @description Reward Wallet runs number guess and spin wheel games on top of a player wallet with deposits and withdrawals.

// @contact.name API Support
// @contact.email support@rewardwallet.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
