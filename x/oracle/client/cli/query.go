package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// GetQueryCmd returns the cli query commands for the oracle module
func GetQueryCmd() *cobra.Command {
	oracleQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the oracle module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	oracleQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryRate(),
		GetCmdQueryCurrency(),
		GetCmdQueryCurrencies(),
		GetCmdQueryPath(),
		GetCmdQuerySubmissions(),
		GetCmdQueryAlarm(),
		GetCmdQueryAlarmsStatus(),
	)

	return oracleQueryCmd
}

// queryEndpoint runs a module query and prints the JSON response
func queryEndpoint(clientCtx client.Context, endpoint string, req interface{}) error {
	var data []byte
	if req != nil {
		bz, err := types.ModuleCdc.MarshalJSON(req)
		if err != nil {
			return err
		}
		data = bz
	}

	route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint)
	res, _, err := clientCtx.QueryWithData(route, data)
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(res) + "\n")
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current oracle module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			return queryEndpoint(clientCtx, types.QueryParams, nil)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRate returns the command to query a cross rate
func GetCmdQueryRate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate [pair]",
		Short: "Query the validated cross rate for a currency pair",
		Long: `Query the validated rate between two currencies, composed along the
currency tree from live feeder submissions.

Example:
  $ atlasd query oracle rate ATOM/OSMO`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pair, err := types.ParsePair(args[0])
			if err != nil {
				return err
			}
			return queryEndpoint(clientCtx, types.QueryRate, &types.QueryRateRequest{
				Base:  pair.Base,
				Quote: pair.Quote,
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryCurrency returns the command to query one currency node
func GetCmdQueryCurrency() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency [symbol]",
		Short: "Query a registered currency by symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			return queryEndpoint(clientCtx, types.QueryCurrency, &types.QueryCurrencyRequest{Symbol: args[0]})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryCurrencies returns the command to list the currency tree
func GetCmdQueryCurrencies() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List every registered currency and its parent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			return queryEndpoint(clientCtx, types.QueryCurrencies, nil)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPath returns the command to query a resolution path
func GetCmdQueryPath() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path [from] [to]",
		Short: "Show the tree hops used to compose a cross rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			return queryEndpoint(clientCtx, types.QueryPath, &types.QueryPathRequest{
				From: args[0],
				To:   args[1],
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySubmissions returns the command to list live submissions
func GetCmdQuerySubmissions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submissions [pair]",
		Short: "List the live feeder submissions for a direct pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pair, err := types.ParsePair(args[0])
			if err != nil {
				return err
			}
			return queryEndpoint(clientCtx, types.QuerySubmissions, &types.QuerySubmissionsRequest{
				Base:  pair.Base,
				Quote: pair.Quote,
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryAlarm returns the command to query one alarm
func GetCmdQueryAlarm() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alarm [alarm-id]",
		Short: "Query a registered alarm by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			alarmID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid alarm id %s: %w", args[0], err)
			}
			return queryEndpoint(clientCtx, types.QueryAlarm, &types.QueryAlarmRequest{AlarmId: alarmID})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryAlarmsStatus returns the command to query pending alarm work
func GetCmdQueryAlarmsStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alarms-status",
		Short: "Show how many alarms would dispatch on the next evaluation cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			return queryEndpoint(clientCtx, types.QueryAlarmsStatus, nil)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
