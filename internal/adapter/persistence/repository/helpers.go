package repository

import (
	"errors"
	"strconv"
	"strings"

	"hvac_registry/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const conditionalCheckFailed = "ConditionalCheckFailed"

// tagKey is the normalized form used by every driver to enforce tag
// uniqueness.
func tagKey(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func numberAttr(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: int64ToString(v)}
}

// canceledAt reports, for a cancelled transaction, whether the write at index
// i failed its condition.
func canceledAt(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || i >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[i].Code
	return code != nil && *code == conditionalCheckFailed
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func tableFor(kind entities.ReferenceKind, brands, locations string) (string, error) {
	switch kind {
	case entities.ReferenceBrands:
		return brands, nil
	case entities.ReferenceLocations:
		return locations, nil
	}
	return "", errors.New("unknown reference kind " + strconv.Quote(string(kind)))
}
