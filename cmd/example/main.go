package main

import (
	"context"
	"fmt"
	"time"

	"github.com/KuechlerO/simple-sams-api/internal/app/config"
	"github.com/KuechlerO/simple-sams-api/internal/app/contracts"
	"github.com/KuechlerO/simple-sams-api/internal/app/drivers/logger"
	"github.com/KuechlerO/simple-sams-api/internal/app/services/sams"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/constvars"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/phenopacket"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	log.Infof("simple-sams-api example %s (%s)", Version, Tag)

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	client := sams.NewSamsClient(internalConfig, zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var provider contracts.CredentialsProvider
	if internalConfig.SAMS.CredentialsFile != "" {
		provider = sams.CredentialsFromFile(internalConfig.SAMS.CredentialsFile)
	} else {
		provider = sams.StaticCredentials(internalConfig.SAMS.Username, internalConfig.SAMS.Password)
	}

	if err := client.LoginWithProvider(ctx, provider); err != nil {
		log.Fatalf("SAMS login failed: %v", err)
	}
	log.Infof("logged in: %t", client.IsLoggedIn())

	packets, err := client.GetAllPhenopackets(ctx)
	if err != nil {
		log.Fatalf("fetching phenopackets failed: %v", err)
	}
	log.Infof("fetched %d phenopackets", len(packets))

	extractor := phenopacket.NewTermExtractor(zapLogger)
	for _, packet := range packets {
		fmt.Printf("%s\n", packet.Subject.ID)
		fmt.Printf("  phenotypes: %s\n", extractor.ExtractPhenotypeTerms(&packet, true))
		fmt.Printf("  diseases:   %s\n", extractor.ExtractDiseaseTerms(&packet, true))

		earliest, err := phenopacket.FilterByOnset(&packet, constvars.OnsetSelectorEarliest)
		if err != nil {
			log.Warnf("no onset data for %s: %v", packet.Subject.ID, err)
			continue
		}
		fmt.Printf("  at earliest onset: %s\n", extractor.ExtractPhenotypeTerms(earliest, true))
	}

	// Round-trip a single record by external id to show the by-id export.
	if len(packets) > 0 && packets[0].Subject.ID != "" {
		packet, err := client.GetPhenopacket(ctx, packets[0].Subject.ID)
		if err != nil {
			log.Fatalf("fetching phenopacket by id failed: %v", err)
		}
		log.Infof("refetched phenopacket for %s", packet.Subject.ID)
	}
}
