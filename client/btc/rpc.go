package btc

import (
	"context"
	"strconv"

	"github.com/go-zoox/jsonrpc"
	"github.com/go-zoox/jsonrpc/server"
	"github.com/go-zoox/logger"
	"github.com/spf13/cast"
)

// For testing only

// RPCServe runs a jsonrpc server exposing the recovery operations until the
// process exits.
func (rc *BtcRecoveryClient) RPCServe() error {
	s := server.New()

	s.Register("recover", func(ctx context.Context, params jsonrpc.Params) (jsonrpc.Result, error) {
		logger.Info("params: %s", params)
		logger.Info("Name %s", rc.GetConfig().Params.Name)

		startIndex := cast.ToUint64(params.Get("startindex"))

		summary, err := rc.RecoverAddresses(startIndex)
		if err != nil {
			return jsonrpc.Result{
				"lastusedindex": "",
				"totalfound":    "",
			}, err
		}

		var additional []string
		for _, addr := range summary.Addresses {
			additional = append(additional, addr.Address)
		}

		return jsonrpc.Result{
			"lastusedindex": strconv.FormatUint(summary.LastUsedIndex, 10),
			"totalfound":    strconv.FormatUint(summary.TotalFound, 10),
			"additional":    additional,
		}, nil
	})

	s.Register("lastindex", func(ctx context.Context, params jsonrpc.Params) (jsonrpc.Result, error) {
		logger.Info("params: %s", params)

		index, err := rc.GetConfig().DB.Cfg().GetLastKnownIndex()
		if err != nil {
			return jsonrpc.Result{
				"lastindex": "",
			}, err
		}

		return jsonrpc.Result{
			"lastindex": strconv.FormatUint(index, 10),
		}, nil
	})

	s.Register("addresses", func(ctx context.Context, params jsonrpc.Params) (jsonrpc.Result, error) {
		logger.Info("params: %s", params)

		recovered, err := rc.GetConfig().DB.Addrs().GetAll()
		if err != nil {
			return jsonrpc.Result{
				"addresses": "",
			}, err
		}

		return jsonrpc.Result{
			"addresses": recovered,
		}, nil
	})

	s.Run()
	return nil
}
