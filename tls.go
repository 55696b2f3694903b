package kmipbio

/* This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/. */

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	tlsutils "github.com/couchbase/goutils/tls"
	"github.com/pkg/errors"
)

// DefaultClientTLSConfig fills in good defaults for client TLS configuration
func DefaultClientTLSConfig(config *tls.Config) {
	config.MinVersion = tls.VersionTLS12
}

// ClientTLSOptions points at the PEM material for a mutually authenticated
// KMIP session: client certificate and key (the key optionally encrypted
// with Passphrase) and the CA bundle the server certificate must chain to.
type ClientTLSOptions struct {
	CertPath   string
	KeyPath    string
	CAPath     string
	Passphrase []byte
}

// LoadClientTLSConfig builds a client TLS configuration from PEM files.
//
// The KMIP exchange layer itself never dials or handshakes; this helper
// exists so callers can set up the secure stream the operations run over.
func LoadClientTLSConfig(opts ClientTLSOptions) (*tls.Config, error) {
	cert, err := tlsutils.LoadX509KeyPair(opts.CertPath, opts.KeyPath, opts.Passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "error loading client certificate and key")
	}

	pool := x509.NewCertPool()

	ca, err := os.ReadFile(opts.CAPath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading CA bundle")
	}

	if !pool.AppendCertsFromPEM(ca) {
		return nil, errors.New("no certificates parsed from CA bundle")
	}

	config := &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
	}
	DefaultClientTLSConfig(config)

	return config, nil
}
