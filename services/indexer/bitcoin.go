package indexer

import (
	"os"
	"strings"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/ulogger"
	"github.com/ordishs/go-bitcoin"
	"github.com/ordishs/gocore"
)

// BlockInfo is the slice of a block the walker consumes.
type BlockInfo struct {
	Hash          string
	Height        uint64
	Tx            []string
	NextBlockHash string
}

// TxOut is one output of a transaction.
type TxOut struct {
	Vout      uint32
	ScriptHex string
}

// BitcoinClient is the narrow RPC surface the chain walker needs.
type BitcoinClient interface {
	GetBlockCount() (uint64, error)
	GetBlockHash(height uint64) (string, error)
	GetBlockInfo(hash string) (*BlockInfo, error)
	GetTransactionOutputs(txid string) ([]TxOut, error)
}

// bitcoindClient backs BitcoinClient with a bitcoind node.
type bitcoindClient struct {
	node *bitcoin.Bitcoind
}

// NewBitcoinClient connects to the configured bitcoind. Credentials come from
// rpc_user/rpc_password, or from a bitcoind cookie file when rpc_cookie is
// set.
func NewBitcoinClient(logger ulogger.Logger) (BitcoinClient, error) {
	host, _ := gocore.Config().Get("rpc_host", "127.0.0.1")
	port, _ := gocore.Config().GetInt("rpc_port", 8332)

	user, _ := gocore.Config().Get("rpc_user", "")
	password, _ := gocore.Config().Get("rpc_password", "")

	if cookiePath, ok := gocore.Config().Get("rpc_cookie"); ok && cookiePath != "" {
		var err error
		if user, password, err = readCookie(cookiePath); err != nil {
			return nil, err
		}
	}

	node, err := bitcoin.New(host, port, user, password, false)
	if err != nil {
		return nil, errors.NewServiceError("failed to connect to bitcoind at %s:%d", host, port, err)
	}

	logger.Infof("[Indexer] using bitcoind at %s:%d", host, port)

	return &bitcoindClient{node: node}, nil
}

func readCookie(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.NewConfigurationError("failed to read rpc cookie %s", path, err)
	}

	parts := strings.SplitN(strings.TrimSpace(string(b)), ":", 2)
	if len(parts) != 2 {
		return "", "", errors.NewConfigurationError("malformed rpc cookie %s", path)
	}

	return parts[0], parts[1], nil
}

func (c *bitcoindClient) GetBlockCount() (uint64, error) {
	info, err := c.node.GetBlockchainInfo()
	if err != nil {
		return 0, err
	}

	return uint64(info.Blocks), nil
}

func (c *bitcoindClient) GetBlockHash(height uint64) (string, error) {
	return c.node.GetBlockHash(int(height)) //nolint:gosec // heights fit in int
}

func (c *bitcoindClient) GetBlockInfo(hash string) (*BlockInfo, error) {
	block, err := c.node.GetBlock(hash)
	if err != nil {
		return nil, err
	}

	return &BlockInfo{
		Hash:          block.Hash,
		Height:        uint64(block.Height),
		Tx:            block.Tx,
		NextBlockHash: block.NextBlockHash,
	}, nil
}

func (c *bitcoindClient) GetTransactionOutputs(txid string) ([]TxOut, error) {
	tx, err := c.node.GetRawTransaction(txid)
	if err != nil {
		return nil, err
	}

	outputs := make([]TxOut, 0, len(tx.Vout))
	for _, out := range tx.Vout {
		outputs = append(outputs, TxOut{
			Vout:      uint32(out.N),
			ScriptHex: out.ScriptPubKey.Hex,
		})
	}

	return outputs, nil
}
