package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into adapters and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ArtifactsDir string

	// Context settings
	Network *Network

	// Credentials and accounts
	PrivateKey       string
	KeystorePath     string
	KeystorePassword string
	Account          string
	Multisig         string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration

	// Chain interaction settings
	InclusionTimeout time.Duration
	PollInterval     time.Duration
	ReadRetryDelays  []time.Duration
	Reapproval       ReapprovalPolicy

	// Config source tracking
	ConfigFile string
}

// Network represents network configuration
type Network struct {
	Name        string `json:"name" toml:"-"`
	ChainID     uint64 `json:"chainId" toml:"chain_id"`
	NodeURL     string `json:"nodeUrl" toml:"node_url"`
	Multisig    string `json:"multisig,omitempty" toml:"multisig"`
	ExplorerURL string `json:"explorerUrl,omitempty" toml:"explorer_url"`
}

// ReapprovalPolicy decides what happens when a signer approves a proposal twice
type ReapprovalPolicy string

const (
	// ReapprovalReject refuses before submission
	ReapprovalReject ReapprovalPolicy = "reject"
	// ReapprovalSubmit submits and lets the contract decide
	ReapprovalSubmit ReapprovalPolicy = "submit"
)

// Valid reports whether the policy is known
func (p ReapprovalPolicy) Valid() bool {
	return p == ReapprovalReject || p == ReapprovalSubmit
}
