// Command kmiptool exercises a KMIP server over TLS: it can create a
// symmetric key, fetch its material, destroy it, or replay a raw
// hex-encoded request message.
package main

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"crypto/tls"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openkmip/kmipbio"
)

func initLogger() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-config path] <create|get|destroy|raw> [args]\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	initLogger()

	configPath := flag.String("config", "kmiptool.toml", "path to the TOML configuration file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	tlsConfig, err := kmipbio.LoadClientTLSConfig(cfg.TLS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load TLS material")
	}

	conn, err := tls.Dial("tcp", cfg.Addr, tlsConfig)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Addr).Msg("failed to connect")
	}
	defer conn.Close()

	if err = conn.SetDeadline(time.Now().Add(cfg.Timeout)); err != nil {
		log.Fatal().Err(err).Msg("failed to set connection deadline")
	}

	ctx := kmipbio.NewContext(cfg.Version)
	ctx.Log = &log.Logger

	switch cmd, args := flag.Arg(0), flag.Args()[1:]; cmd {
	case "create":
		err = runCreate(ctx, conn, cfg)
	case "get":
		err = runGet(ctx, conn, cfg, args)
	case "destroy":
		err = runDestroy(ctx, conn, cfg, args)
	case "raw":
		err = runRaw(ctx, conn, cfg)
	default:
		usage()
	}

	if err != nil {
		log.Fatal().Err(err).Msg("operation failed")
	}
}

func runCreate(ctx *kmipbio.Context, conn *tls.Conn, cfg toolConfig) error {
	name := "kmiptool-" + uuid.New().String()

	attrs := kmipbio.TemplateAttribute{
		Attributes: kmipbio.Attributes{
			{
				Name:  kmipbio.ATTRIBUTE_NAME_CRYPTOGRAPHIC_ALGORITHM,
				Value: kmipbio.CRYPTO_AES,
			},
			{
				Name:  kmipbio.ATTRIBUTE_NAME_CRYPTOGRAPHIC_LENGTH,
				Value: int32(256),
			},
			{
				Name:  kmipbio.ATTRIBUTE_NAME_CRYPTOGRAPHIC_USAGE_MASK,
				Value: kmipbio.USAGE_MASK_ENCRYPT | kmipbio.USAGE_MASK_DECRYPT,
			},
			{
				Name: kmipbio.ATTRIBUTE_NAME_NAME,
				Value: kmipbio.Name{
					Value: name,
					Type:  kmipbio.NAME_TYPE_UNINTERPRETED_TEXT_STRING,
				},
			},
		},
	}

	id, err := ctx.Create(conn, cfg.MaxMessageSize, attrs)
	if err != nil {
		return err
	}

	log.Info().Str("name", name).Msg("created symmetric key")
	fmt.Println(string(id))

	return nil
}

func runGet(ctx *kmipbio.Context, conn *tls.Conn, cfg toolConfig, args []string) error {
	if len(args) != 1 {
		usage()
	}

	key, err := ctx.GetSymmetricKey(conn, cfg.MaxMessageSize, args[0])
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(key))

	return nil
}

func runDestroy(ctx *kmipbio.Context, conn *tls.Conn, cfg toolConfig, args []string) error {
	if len(args) != 1 {
		usage()
	}

	if err := ctx.Destroy(conn, cfg.MaxMessageSize, args[0]); err != nil {
		return err
	}

	log.Info().Str("id", args[0]).Msg("destroyed key")

	return nil
}

// runRaw reads a hex-encoded request message from stdin, sends it as-is and
// prints the hex-encoded response frame without decoding it.
func runRaw(ctx *kmipbio.Context, conn *tls.Conn, cfg toolConfig) error {
	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	request, err := hex.DecodeString(strings.Join(strings.Fields(string(in)), ""))
	if err != nil {
		return err
	}

	response, err := ctx.SendRawRequest(conn, cfg.MaxMessageSize, request)
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(response))

	return nil
}
