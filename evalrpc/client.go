package evalrpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"xdao.co/varbin/function"
)

// Client evaluates scalars over the Scalar gRPC service.
//
// Wire types are taken from the client's catalog, which must describe the
// same overloads as the server's (function.Default() unless overridden).
type Client struct {
	conn    *grpc.ClientConn
	cc      grpc.ClientConnInterface
	catalog *function.Catalog

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout, when non-zero, makes Dial wait up to Timeout for the
	// connection to become ready instead of connecting lazily.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int

	// Catalog overrides the catalog used to resolve overload signatures.
	Catalog *function.Catalog
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		dialOpts = append(dialOpts, grpc.WithBlock())
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	c := NewClient(cc, opts.Catalog)
	c.conn = cc
	return c, nil
}

// NewClient wraps an existing connection. A nil catalog selects
// function.Default().
func NewClient(cc grpc.ClientConnInterface, catalog *function.Catalog) *Client {
	if catalog == nil {
		catalog = function.Default()
	}
	return &Client{cc: cc, catalog: catalog}
}

func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Eval calls the overload of name matching arg's type.
func (c *Client) Eval(ctx context.Context, name string, arg function.Value) (function.Value, error) {
	s, err := c.catalog.Lookup(name, arg.Type)
	if err != nil {
		return function.Value{}, err
	}
	in, err := toMessage(arg)
	if err != nil {
		return function.Value{}, err
	}
	out := newMessage(s.Return)
	if err := c.cc.Invoke(ctx, FullMethod(s), in, out); err != nil {
		return function.Value{}, mapRPC(err)
	}
	return fromMessage(s.Return, out)
}

// Invoke is Eval with a background context bounded by Timeout.
func (c *Client) Invoke(name string, arg function.Value) (function.Value, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	return c.Eval(ctx, name, arg)
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
