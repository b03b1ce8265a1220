package indexer

import (
	"context"
	"encoding/hex"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
	"github.com/melvincarvalho/nomen/util/retry"
)

// indexBlockchain walks blocks forward from the store's resume height,
// extracting name anchors from OP_RETURN outputs. It refuses to index the
// last confirmations blocks below the tip; that lag is the only reorg
// tolerance the indexer has.
//
// Outputs are visited in natural chain order (height, tx index, vout index),
// which together with the first-writer-wins insert makes the resulting table
// deterministic for any chain state.
func (x *Indexer) indexBlockchain(ctx context.Context) error {
	height, err := x.store.NextIndexHeight(ctx, x.params.GenesisIndexHeight)
	if err != nil {
		return err
	}

	tip, err := retry.Retry(ctx, x.logger, func() (uint64, error) {
		return x.chain.GetBlockCount()
	}, retry.WithMessage("[Indexer] getblockcount, "))
	if err != nil {
		return errors.NewServiceError("failed to get chain tip", err)
	}

	if height+x.confirmations > tip {
		x.logger.Debugf("[Indexer] caught up at height %d, tip %d", height, tip)
		return nil
	}

	x.logger.Infof("[Indexer] starting index from block height: %d", height)

	hash, err := x.chain.GetBlockHash(height)
	if err != nil {
		return errors.NewServiceError("failed to get block hash for height %d", height, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		block, err := x.chain.GetBlockInfo(hash)
		if err != nil {
			return errors.NewServiceError("failed to get block %s", hash, err)
		}

		// stay confirmations blocks below the tip
		if block.Height+x.confirmations > tip {
			break
		}

		x.logBlockHeight(block.Height)

		for _, txid := range block.Tx {
			if err = x.indexTransaction(ctx, txid, block.Hash, block.Height); err != nil {
				return err
			}
		}

		prometheusIndexerBlocks.Inc()

		if block.NextBlockHash == "" {
			break
		}

		hash = block.NextBlockHash
	}

	return nil
}

func (x *Indexer) indexTransaction(ctx context.Context, txid, blockhash string, height uint64) error {
	outputs, err := x.chain.GetTransactionOutputs(txid)
	if err != nil {
		return errors.NewServiceError("failed to get transaction %s", txid, err)
	}

	for _, out := range outputs {
		script, err := hex.DecodeString(out.ScriptHex)
		if err != nil {
			x.logger.Warnf("[Indexer] undecodable script in %s:%d: %v", txid, out.Vout, err)
			continue
		}

		payload, err := model.ParseOPReturnScript(script)
		if err != nil {
			// a malformed anchor skips the output, not the block
			prometheusIndexerMalformedPayloads.Inc()
			x.logger.Errorf("[Indexer] malformed anchor in %s:%d: %v", txid, out.Vout, err)

			continue
		}

		if payload == nil {
			continue
		}

		if payload.Kind != model.KindCreate {
			// transfer anchors are reserved
			x.logger.Debugf("[Indexer] ignoring anchor kind 0x%02x in %s:%d", byte(payload.Kind), txid, out.Vout)
			continue
		}

		anchor := &model.NamespaceAnchor{
			Nsid:      payload.Nsid.String(),
			Blockhash: blockhash,
			Txid:      txid,
			Vout:      out.Vout,
			Height:    height,
		}

		if err = x.store.InsertNamespace(ctx, anchor); err != nil {
			return err
		}

		prometheusIndexerAnchors.Inc()
		x.logger.Infof("[Indexer] anchor found for %s at height %d", anchor.Nsid, height)
	}

	return nil
}

func (x *Indexer) logBlockHeight(height uint64) {
	if height%10 == 0 {
		x.logger.Infof("[Indexer] indexing block height %d", height)
	} else {
		x.logger.Debugf("[Indexer] indexing block height %d", height)
	}
}
