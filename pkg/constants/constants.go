// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	WriteReadReadPerms = 0o644

	// deployed program and the cluster it lives on
	ProgramID   = "FfV3AHU6WS7aPz53DnVvWBMEZR46ydGkEtKpLiKfRTrR"
	RPCEndpoint = "https://api.devnet.solana.com"

	// initialize instruction arguments
	DefaultQuorum    = 5
	DefaultMinJurors = 2

	// on-chain GlobalConfig reserves room for this many validator keys
	MaxValidators = 100
	MaxQuorum     = 255

	// seed of the GlobalConfig PDA
	ConfigSeed = "config"

	WalletCLI = "solana"

	DefaultLogLevel = "WARN"

	ConfigKeyProgramID   = "program-id"
	ConfigKeyRPCEndpoint = "rpc-endpoint"
	ConfigKeyValidators  = "validators"
	ConfigKeyQuorum      = "quorum"
	ConfigKeyMinJurors   = "min-jurors"
)

// WalletAddressArgs is the argv passed to WalletCLI to print the active address.
var WalletAddressArgs = []string{"address"}

// DevnetValidators are the top five active devnet validators at deployment time.
var DevnetValidators = []string{
	"9mtqPQnWcdUJjVHqYaWGHwwFswHLAEaMkMoLMsctAfms",
	"3ogts3UmEwRBdGNScChzKpcreuPPNBC45TM148fCTEdM",
	"Eaph3z9pGPH9yUkDQdUZiG4ejEwMrUXxLsP7wGehBasy",
	"GseuivbeqFdgQnZuis1eYUjAE2bmZtA695uKxtuojdWD",
	"CbQDdW66fhxGBAxyuR1gHmvtGfvBcpMosaNWo8XNyJ5M",
}
