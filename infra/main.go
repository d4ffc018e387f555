package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/banks-directory/infra/cloudrun"
	"github.com/GregMSThompson/banks-directory/infra/docker"
	"github.com/GregMSThompson/banks-directory/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		svc, err := cloudrun.SetupCloudRun(ctx, prov, repo)
		if err != nil {
			return err
		}

		ctx.Export("url", svc.Statuses.Index(pulumi.Int(0)).Url())
		return nil
	})
}
