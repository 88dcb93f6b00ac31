package firestore

import (
	"context"
	"strings"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

type Client struct {
	FS *fs.Client
}

func New(ctx context.Context, projectID, credentialsJSON string) (*Client, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	c, err := fs.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{FS: c}, nil
}

func (c *Client) Close() error { return c.FS.Close() }
