// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-providers R6 (Bedrock adapter).
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// BedrockAPI abstracts the Bedrock Converse call for testing.
type BedrockAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// Bedrock talks to AWS Bedrock through the non-streaming Converse API.
type Bedrock struct {
	api BedrockAPI
}

// NewBedrock creates the Bedrock adapter using the standard AWS credential
// chain. Region may be empty, in which case the SDK environment applies.
func NewBedrock(ctx context.Context, region string) (*Bedrock, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading AWS config: %v", ErrAuth, err)
	}

	return &Bedrock{api: bedrockruntime.NewFromConfig(awsCfg)}, nil
}

// NewBedrockWithAPI creates an adapter with a pre-configured API
// implementation. Used for testing with mock clients.
func NewBedrockWithAPI(api BedrockAPI) *Bedrock {
	return &Bedrock{api: api}
}

// Submit sends one Converse request and returns the generated text.
func (b *Bedrock) Submit(ctx context.Context, prompt, model string, temperature float64, maxTokens int) (string, error) {
	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(model),
		Messages: []brtypes.Message{
			{
				Role: brtypes.ConversationRoleUser,
				Content: []brtypes.ContentBlock{
					&brtypes.ContentBlockMemberText{Value: prompt},
				},
			},
		},
		InferenceConfig: &brtypes.InferenceConfiguration{
			MaxTokens:   aws.Int32(int32(maxTokens)),
			Temperature: aws.Float32(float32(temperature)),
		},
	}

	output, err := b.api.Converse(ctx, input)
	if err != nil {
		return "", classifyBedrockError(err, model)
	}

	msg, ok := output.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok || len(msg.Value.Content) == 0 {
		return "", fmt.Errorf("%w: empty Converse output", ErrMalformedResponse)
	}
	text, ok := msg.Value.Content[0].(*brtypes.ContentBlockMemberText)
	if !ok {
		return "", fmt.Errorf("%w: non-text Converse output", ErrMalformedResponse)
	}
	return text.Value, nil
}

// classifyBedrockError maps Bedrock SDK errors into the common taxonomy.
func classifyBedrockError(err error, model string) error {
	var accessDenied *brtypes.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}

	var throttle *brtypes.ThrottlingException
	if errors.As(err, &throttle) {
		return fmt.Errorf("%w: %v", ErrRateLimit, err)
	}

	var notFound *brtypes.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: model %s: %v", ErrUnsupportedModel, model, err)
	}

	var validation *brtypes.ValidationException
	if errors.As(err, &validation) {
		return fmt.Errorf("%w: %v", ErrUnsupportedModel, err)
	}

	return fmt.Errorf("%w: %v", ErrTransport, err)
}
