package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/symbol/symbol-sdk-go/pkg/descriptors"
	"github.com/symbol/symbol-sdk-go/pkg/facade"
	"github.com/symbol/symbol-sdk-go/pkg/shared"
	"github.com/symbol/symbol-sdk-go/pkg/symbol"
	"github.com/urfave/cli/v2"
)

func mosaicCommand() *cli.Command {
	defaults := descriptors.DefaultMosaicDescriptorOptions()

	return &cli.Command{
		Name:  "mosaic",
		Usage: "Print the mosaic definition and supply change descriptors",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "Owner address used to derive the mosaic id (defaults to SYMBOL_SAMPLE_ADDRESS)",
			},
			&cli.Uint64Flag{
				Name:  "nonce",
				Usage: "Mosaic nonce (defaults to SYMBOL_MOSAIC_NONCE)",
			},
			&cli.Uint64Flag{
				Name:  "duration",
				Value: defaults.Duration,
				Usage: "Mosaic duration in blocks",
			},
			&cli.StringFlag{
				Name:  "flags",
				Value: defaults.Flags,
				Usage: "Space separated mosaic flags",
			},
			&cli.UintFlag{
				Name:  "divisibility",
				Value: uint(defaults.Divisibility),
				Usage: "Mosaic divisibility",
			},
			&cli.StringFlag{
				Name:  "quantity",
				Value: defaults.Quantity.String(),
				Usage: "Supply change in whole units, scaled by divisibility",
			},
			&cli.StringFlag{
				Name:  "action",
				Value: defaults.Action,
				Usage: "Supply change action (increase or decrease)",
			},
			&cli.StringFlag{
				Name:  "jq",
				Usage: "jq filter applied to the descriptor list",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "Print compact JSON",
			},
		},
		Action: func(c *cli.Context) error {
			logger := newLogger(c)

			config, err := shared.SampleConfigFromEnv()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			options := defaults
			options.Address = config.SampleAddress
			if c.IsSet("address") {
				options.Address = c.String("address")
			}
			options.Nonce = config.MosaicNonce
			if c.IsSet("nonce") {
				nonce, err := toNonce(c.Uint64("nonce"))
				if err != nil {
					return err
				}
				options.Nonce = nonce
			}
			if c.Uint("divisibility") > math.MaxUint8 {
				return fmt.Errorf("divisibility %d is out of range", c.Uint("divisibility"))
			}
			options.Divisibility = uint8(c.Uint("divisibility"))
			options.Duration = c.Uint64("duration")
			options.Flags = c.String("flags")
			options.Action = c.String("action")

			quantity, err := decimal.NewFromString(c.String("quantity"))
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", c.String("quantity"), err)
			}
			options.Quantity = quantity

			logger.Debug("building mosaic descriptors",
				"address", options.Address,
				"nonce", options.Nonce,
				"divisibility", options.Divisibility,
			)

			built, err := descriptors.MosaicDescriptors(options)
			if err != nil {
				return err
			}

			if filter := c.String("jq"); filter != "" {
				results, err := descriptors.Query(built, filter)
				if err != nil {
					return err
				}
				for _, result := range results {
					if err := writeJSON(c, result); err != nil {
						return err
					}
				}
				return nil
			}

			return writeJSON(c, built)
		},
	}
}

func mosaicIDCommand() *cli.Command {
	return &cli.Command{
		Name:      "mosaic-id",
		Usage:     "Derive a mosaic id from an owner address and nonce",
		ArgsUsage: "ADDRESS NONCE",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("address and nonce are required")
			}

			owner, err := facade.Address(c.Args().Get(0))
			if err != nil {
				return err
			}
			rawNonce, err := strconv.ParseUint(c.Args().Get(1), 10, 32)
			if err != nil {
				return fmt.Errorf("invalid nonce %q: %w", c.Args().Get(1), err)
			}

			id := symbol.GenerateMosaicID(owner, uint32(rawNonce))
			newLogger(c).Debug("derived mosaic id", "owner", owner.String(), "nonce", rawNonce)

			_, err = fmt.Fprintln(c.App.Writer, id.String())
			return err
		},
	}
}

func namespaceIDCommand() *cli.Command {
	return &cli.Command{
		Name:      "namespace-id",
		Usage:     "Derive the namespace ids of a fully qualified namespace name",
		ArgsUsage: "NAME",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("namespace name is required")
			}

			path, err := symbol.GenerateNamespacePath(c.Args().Get(0))
			if err != nil {
				return err
			}
			return writeJSON(c, map[string]any{
				"name": c.Args().Get(0),
				"id":   path[len(path)-1],
				"path": path,
			})
		},
	}
}

func addressCommand() *cli.Command {
	return &cli.Command{
		Name:      "address",
		Usage:     "Decode an address and check it against the selected network",
		ArgsUsage: "ADDRESS",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return fmt.Errorf("address is required")
			}

			networkName := c.String("network")
			if networkName == "" {
				config, err := shared.ConfigFromEnv()
				if err != nil {
					return fmt.Errorf("failed to load configuration: %w", err)
				}
				networkName = config.Network
			}
			symbolFacade, err := facade.NewSymbolFacade(networkName)
			if err != nil {
				return err
			}

			address, err := facade.Address(c.Args().Get(0))
			if err != nil {
				return err
			}

			encodedNetwork := "unknown"
			if network, networkErr := address.Network(); networkErr == nil {
				encodedNetwork = network.Name
			}

			return writeJSON(c, map[string]any{
				"address":         address,
				"encoded_network": encodedNetwork,
				"network":         symbolFacade.Network.Name,
				"valid":           symbolFacade.Network.IsValidAddress(address),
			})
		},
	}
}

func toNonce(value uint64) (uint32, error) {
	if value > math.MaxUint32 {
		return 0, fmt.Errorf("nonce %d does not fit in 32 bits", value)
	}
	return uint32(value), nil
}

func writeJSON(c *cli.Context, value any) error {
	var (
		data []byte
		err  error
	)
	if c.Bool("compact") {
		data, err = json.Marshal(value)
	} else {
		data, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelError
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
