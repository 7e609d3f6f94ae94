package mongo

import (
	"context"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type ConnectionInfo struct {
	Scheme     string
	User       string
	Password   string
	Host       string
	Port       string
	DB         string
	AuthSource string
}

type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewConnection(ctx context.Context, info ConnectionInfo) (*Mongo, error) {
	u := url.URL{
		Scheme: info.Scheme,
		Host:   info.Host,
		Path:   "/" + info.DB,
	}
	if u.Scheme == "" {
		u.Scheme = "mongodb"
	}
	if info.Port != "" {
		u.Host += ":" + info.Port
	}
	if info.User != "" {
		u.User = url.UserPassword(info.User, info.Password)
	}
	if info.AuthSource != "" {
		u.RawQuery = "authSource=" + info.AuthSource
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(u.String()))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &Mongo{Client: client, Database: client.Database(info.DB)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	if m.Client != nil {
		return m.Client.Disconnect(ctx)
	}
	return nil
}
