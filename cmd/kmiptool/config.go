package main

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/openkmip/kmipbio"
)

type fileConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	CertPath       string `toml:"cert_path"`
	KeyPath        string `toml:"key_path"`
	CAPath         string `toml:"ca_path"`
	KeyPassphrase  string `toml:"key_passphrase"`
	MaxMessageSize int32  `toml:"max_message_size"`
	Timeout        string `toml:"timeout"`
	ProtocolMajor  int32  `toml:"protocol_major"`
	ProtocolMinor  int32  `toml:"protocol_minor"`
}

type toolConfig struct {
	Addr           string
	TLS            kmipbio.ClientTLSOptions
	MaxMessageSize int32
	Timeout        time.Duration
	Version        kmipbio.ProtocolVersion
}

func defaultConfig() toolConfig {
	return toolConfig{
		MaxMessageSize: 8192,
		Timeout:        30 * time.Second,
		Version:        kmipbio.DefaultVersion,
	}
}

func loadConfig(path string) (toolConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, errors.Wrap(err, "load config")
	}

	host := strings.TrimSpace(raw.Host)
	if host == "" {
		return toolConfig{}, errors.New("config is missing host")
	}

	port := raw.Port
	if !meta.IsDefined("port") {
		port = 5696
	}
	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(port))

	cfg.TLS = kmipbio.ClientTLSOptions{
		CertPath: raw.CertPath,
		KeyPath:  raw.KeyPath,
		CAPath:   raw.CAPath,
	}
	if raw.KeyPassphrase != "" {
		cfg.TLS.Passphrase = []byte(raw.KeyPassphrase)
	}

	if meta.IsDefined("max_message_size") {
		cfg.MaxMessageSize = raw.MaxMessageSize
	}

	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return toolConfig{}, errors.Wrap(err, "parse timeout")
		}
		cfg.Timeout = d
	}

	if meta.IsDefined("protocol_major") {
		cfg.Version.Major = raw.ProtocolMajor
	}
	if meta.IsDefined("protocol_minor") {
		cfg.Version.Minor = raw.ProtocolMinor
	}

	return cfg, nil
}
