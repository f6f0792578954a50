package main

import (
	"context"
	"flag"
	"os"

	"crpt-api-client/client"
	"crpt-api-client/conf"
	"crpt-api-client/domain"
	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"github.com/txix-open/isp-kit/log"
)

func main() {
	configPath := flag.String("config", "config.json", "path to client config")
	flag.Parse()

	logger, err := log.New(log.WithLevel(log.InfoLevel))
	if err != nil {
		panic(err)
	}
	ctx := context.Background()

	config := conf.Local{
		Api: conf.Api{Url: conf.DefaultApiUrl},
	}
	data, err := os.ReadFile(*configPath)
	if err != nil {
		logger.Fatal(ctx, errors.WithMessage(err, "read config"))
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		logger.Fatal(ctx, errors.WithMessage(err, "unmarshal config"))
	}
	logger.SetLevel(config.Logging.LogLevel)

	cli, err := client.New(config, logger)
	if err != nil {
		logger.Fatal(ctx, errors.WithMessage(err, "create client"))
	}
	defer cli.Close()

	document := domain.Document{
		ProductDocument: "product introduction document",
		ProductGroup:    domain.ProductGroupShoes,
		DocumentFormat:  domain.DocumentFormatManual,
		Type:            domain.DocumentTypeLpIntroduceGoods,
	}
	response, err := cli.CreateDocument(ctx, document, "example-signature")
	if err != nil {
		logger.Fatal(ctx, errors.WithMessage(err, "create document"))
	}

	logger.Info(ctx, "document created", log.String("value", response.Value))
}
