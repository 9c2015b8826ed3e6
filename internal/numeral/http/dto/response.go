package dto

import (
	numeralDomain "github.com/allisson/elbonian/internal/numeral/domain"
)

// ConversionResponse represents a numeral in both notations.
type ConversionResponse struct {
	Input    string `json:"input"`
	Kind     string `json:"kind"`
	Arabic   int    `json:"arabic"`
	Elbonian string `json:"elbonian"`
}

// BlockResponse represents the block matched for one place value.
type BlockResponse struct {
	Place  string `json:"place"`
	Digit  int    `json:"digit"`
	Block  string `json:"block"`
	Amount int    `json:"amount"`
}

// InspectionResponse represents a numeral with its per-place decomposition.
type InspectionResponse struct {
	ConversionResponse
	Blocks []BlockResponse `json:"blocks"`
}

// MapConversionToResponse converts a domain conversion to an API response.
func MapConversionToResponse(conversion *numeralDomain.Conversion) ConversionResponse {
	return ConversionResponse{
		Input:    conversion.Input,
		Kind:     conversion.Kind.String(),
		Arabic:   conversion.Arabic,
		Elbonian: conversion.Elbonian,
	}
}

// MapInspectionToResponse converts a domain inspection to an API response.
func MapInspectionToResponse(inspection *numeralDomain.Inspection) InspectionResponse {
	blocks := make([]BlockResponse, 0, len(inspection.Blocks))
	for _, block := range inspection.Blocks {
		blocks = append(blocks, BlockResponse{
			Place:  block.Place.String(),
			Digit:  block.Digit,
			Block:  block.Symbols,
			Amount: block.Value(),
		})
	}

	return InspectionResponse{
		ConversionResponse: MapConversionToResponse(&inspection.Conversion),
		Blocks:             blocks,
	}
}
