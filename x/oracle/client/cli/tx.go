package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// GetTxCmd returns the transaction commands for the oracle module
func GetTxCmd() *cobra.Command {
	oracleTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Oracle transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	oracleTxCmd.AddCommand(
		CmdSubmitPrice(),
		CmdRegisterAlarm(),
		CmdCancelAlarm(),
		CmdAddCurrency(),
		CmdRemoveCurrency(),
	)

	return oracleTxCmd
}

// CmdSubmitPrice returns a CLI command handler for submitting a price
func CmdSubmitPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-price [pair] [rate]",
		Short: "Submit a raw price observation for a currency pair",
		Long: `Submit a raw price observation for a direct currency pair as a feeder.

The pair is written BASE/QUOTE and must be a direct edge of the currency
tree (the base currency's parent is the quote currency). The rate is a
decimal value stored with 18 decimal places.

Examples:
  $ atlasd tx oracle submit-price OSMO/USD 0.98 --from feeder-key
  $ atlasd tx oracle submit-price ATOM/USD 12.345678 --from feeder-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pair, err := types.ParsePair(args[0])
			if err != nil {
				return err
			}

			rate, err := math.LegacyNewDecFromStr(args[1])
			if err != nil {
				return fmt.Errorf("invalid rate %s: %w (must be a decimal number)", args[1], err)
			}
			if rate.IsNil() || !rate.IsPositive() {
				return fmt.Errorf("rate must be positive, got: %s", args[1])
			}

			msg := types.NewMsgSubmitPrice(clientCtx.GetFromAddress().String(), pair, rate)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRegisterAlarm returns a CLI command handler for registering an alarm
func CmdRegisterAlarm() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-alarm [pair]",
		Short: "Register a threshold alarm on a currency pair",
		Long: `Register an alarm that fires when the pair's rate strictly crosses a
threshold. At least one of --below and --above must be set; a zero value
leaves that side unset. One-shot alarms fire exactly once; --recurring
alarms re-arm after the rate crosses back over the tripped threshold.

Examples:
  $ atlasd tx oracle register-alarm OSMO/USD --below 0.90 --from owner-key
  $ atlasd tx oracle register-alarm ATOM/OSMO --above 1.01 --recurring --from owner-key
  $ atlasd tx oracle register-alarm ATOM/USD --below 10 --above 15 --from owner-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pair, err := types.ParsePair(args[0])
			if err != nil {
				return err
			}

			below, err := decFlag(cmd, FlagBelow)
			if err != nil {
				return err
			}
			above, err := decFlag(cmd, FlagAbove)
			if err != nil {
				return err
			}
			recurring, err := cmd.Flags().GetBool(FlagRecurring)
			if err != nil {
				return err
			}

			msg := types.NewMsgRegisterAlarm(clientCtx.GetFromAddress().String(), pair, below, above, recurring)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagBelow, "0", "Fire when the rate drops strictly below this value")
	cmd.Flags().String(FlagAbove, "0", "Fire when the rate rises strictly above this value")
	cmd.Flags().Bool(FlagRecurring, false, "Re-arm the alarm after the rate crosses back")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelAlarm returns a CLI command handler for cancelling an alarm
func CmdCancelAlarm() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-alarm [alarm-id]",
		Short: "Cancel an alarm you own",
		Long: `Cancel a previously registered alarm. Only the alarm's owner may cancel it.

Example:
  $ atlasd tx oracle cancel-alarm 7 --from owner-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			alarmID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid alarm id %s: %w", args[0], err)
			}

			msg := types.NewMsgCancelAlarm(clientCtx.GetFromAddress().String(), alarmID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddCurrency returns a CLI command handler for adding a currency node.
// The transaction must be signed by the module authority.
func CmdAddCurrency() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-currency [symbol]",
		Short: "Add a currency to the tree (authority only)",
		Long: `Add a currency node to the tree. The first currency added with no
--parent becomes the root; every later currency must name a registered
parent. Only the module authority may sign this transaction.

Examples:
  $ atlasd tx oracle add-currency USD --precision 2 --from authority-key
  $ atlasd tx oracle add-currency ATOM --parent USD --precision 6 --from authority-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			parent, err := cmd.Flags().GetString(FlagParent)
			if err != nil {
				return err
			}
			precision, err := cmd.Flags().GetUint32(FlagPrecision)
			if err != nil {
				return err
			}

			msg := types.NewMsgAddCurrency(clientCtx.GetFromAddress().String(), args[0], parent, precision)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagParent, "", "Parent currency symbol (empty for the root)")
	cmd.Flags().Uint32(FlagPrecision, 6, "Decimal precision of the currency")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveCurrency returns a CLI command handler for removing a leaf
// currency. The transaction must be signed by the module authority.
func CmdRemoveCurrency() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-currency [symbol]",
		Short: "Remove an unused leaf currency (authority only)",
		Long: `Remove a currency from the tree. The currency must be a leaf with no
live submissions and no registered alarms.

Example:
  $ atlasd tx oracle remove-currency WETH --from authority-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgRemoveCurrency(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// decFlag parses a decimal flag value
func decFlag(cmd *cobra.Command, name string) (math.LegacyDec, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return math.LegacyDec{}, err
	}
	value, err := math.LegacyNewDecFromStr(raw)
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("invalid --%s value %s: %w", name, raw, err)
	}
	return value, nil
}
