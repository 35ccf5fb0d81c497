package executor

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"wheelx-mcp/pkg/types"
)

// Executor signs and broadcasts quote transactions through an EVM
// JSON-RPC endpoint.
type Executor struct {
	client *ethclient.Client
}

// New connects to an EVM RPC endpoint
func New(rpcURL string) (*Executor, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("RPC URL must not be empty")
	}

	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}

	return &Executor{client: client}, nil
}

// Close releases the underlying RPC connection
func (e *Executor) Close() {
	e.client.Close()
}

// BuildTransaction builds a legacy transaction from a quote's Tx
// payload, filling nonce and gas price from the network.
func (e *Executor) BuildTransaction(ctx context.Context, txData types.Tx, from common.Address) (*ethtypes.Transaction, error) {
	if txData.Gas == nil {
		return nil, fmt.Errorf("quote transaction has no gas limit")
	}

	nonce, err := e.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := e.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	to := common.HexToAddress(txData.To)
	tx := ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    new(big.Int).SetUint64(txData.Value),
		Gas:      *txData.Gas,
		GasPrice: gasPrice,
		Data:     common.FromHex(txData.Data),
	})

	return tx, nil
}

// BuildDynamicFeeTransaction builds an EIP-1559 transaction from a
// quote's Tx payload. The fee cap is the suggested tip plus twice the
// current base fee, so the transaction stays includable across a few
// base-fee increases.
func (e *Executor) BuildDynamicFeeTransaction(ctx context.Context, txData types.Tx, from common.Address) (*ethtypes.Transaction, error) {
	if txData.Gas == nil {
		return nil, fmt.Errorf("quote transaction has no gas limit")
	}

	nonce, err := e.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	chainID, err := e.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	gasTipCap, err := e.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas tip cap: %w", err)
	}

	header, err := e.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get header: %w", err)
	}
	gasFeeCap := new(big.Int).Add(gasTipCap, new(big.Int).Mul(header.BaseFee, big.NewInt(2)))

	to := common.HexToAddress(txData.To)
	tx := ethtypes.NewTx(&ethtypes.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
		Gas:       *txData.Gas,
		To:        &to,
		Value:     new(big.Int).SetUint64(txData.Value),
		Data:      common.FromHex(txData.Data),
	})

	return tx, nil
}

// SignAndSend signs a built transaction with a hex private key and
// broadcasts it, returning the transaction hash.
func (e *Executor) SignAndSend(ctx context.Context, tx *ethtypes.Transaction, privateKey string) (common.Hash, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid private key: %w", err)
	}

	chainID, err := e.client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get chain ID: %w", err)
	}

	signedTx, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(chainID), key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := e.client.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	return signedTx.Hash(), nil
}

// WaitMined polls for the transaction receipt every second until the
// context is cancelled.
func (e *Executor) WaitMined(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			receipt, err := e.client.TransactionReceipt(ctx, txHash)
			if err != nil {
				if strings.Contains(err.Error(), "not found") {
					continue
				}
				return nil, fmt.Errorf("failed to get transaction receipt: %w", err)
			}
			return receipt, nil
		}
	}
}
