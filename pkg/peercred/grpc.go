package peercred

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc/credentials"
)

// AuthInfo is the credentials.AuthInfo carried on connections
// authenticated by peer credential.
type AuthInfo struct {
	credentials.CommonAuthInfo

	// Cred is the peer credential resolved during the handshake.
	Cred Cred
}

// AuthType identifies this AuthInfo implementation.
func (AuthInfo) AuthType() string { return "peercred" }

// NewTransportCredentials returns grpc transport credentials for unix
// domain transports. The handshake resolves the peer credential of the
// connection and exposes it to handlers as AuthInfo; the connection
// itself passes through unmodified, since a local socket needs no
// encryption.
func NewTransportCredentials() credentials.TransportCredentials {
	return &transportCredentials{}
}

type transportCredentials struct{}

func (tc *transportCredentials) ServerHandshake(
	conn net.Conn,
) (net.Conn, credentials.AuthInfo, error) {
	info, err := handshake(conn)
	if err != nil {
		return nil, nil, err
	}

	return conn, info, nil
}

func (tc *transportCredentials) ClientHandshake(
	_ context.Context,
	_ string,
	conn net.Conn,
) (net.Conn, credentials.AuthInfo, error) {
	info, err := handshake(conn)
	if err != nil {
		return nil, nil, err
	}

	return conn, info, nil
}

func handshake(conn net.Conn) (AuthInfo, error) {
	unixConn, ok := conn.(*net.UnixConn)
	if !ok {
		return AuthInfo{}, fmt.Errorf(
			"peer credential handshake: %T is not a unix connection", conn,
		)
	}

	cred, err := Get(unixConn)
	if err != nil {
		return AuthInfo{}, fmt.Errorf("peer credential handshake: %w", err)
	}

	return AuthInfo{
		CommonAuthInfo: credentials.CommonAuthInfo{
			SecurityLevel: credentials.PrivacyAndIntegrity,
		},
		Cred: cred,
	}, nil
}

func (tc *transportCredentials) Info() credentials.ProtocolInfo {
	return credentials.ProtocolInfo{SecurityProtocol: "peercred"}
}

func (tc *transportCredentials) Clone() credentials.TransportCredentials {
	return &transportCredentials{}
}

func (tc *transportCredentials) OverrideServerName(string) error {
	return nil
}
