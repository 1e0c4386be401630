package awsec2

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Tags applied to every resource the provider creates. Lookups filter on
// TagOwned so the lab never touches foreign resources.
const (
	// TagOwned marks a resource as created by handson.
	TagOwned = "handson:owned"
	// TagDelegate records which delegate a subnet belongs to.
	TagDelegate = "handson:delegate"
	// TagRole records the role of an instance (e.g. admin, windows).
	TagRole = "handson:role"
)

// ownedTags builds the tag specification attached to a freshly created
// resource of the given type.
func ownedTags(resourceType types.ResourceType, extra ...types.Tag) []types.TagSpecification {
	tags := append([]types.Tag{
		{Key: aws.String(TagOwned), Value: aws.String("true")},
	}, extra...)

	return []types.TagSpecification{
		{
			ResourceType: resourceType,
			Tags:         tags,
		},
	}
}

// delegateTag builds the tag recording a subnet's delegate number.
func delegateTag(delegate int) types.Tag {
	return types.Tag{
		Key:   aws.String(TagDelegate),
		Value: aws.String(strconv.Itoa(delegate)),
	}
}

// tagValue extracts a tag value from a resource's tag list.
func tagValue(tags []types.Tag, key string) (string, bool) {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == key {
			return aws.ToString(tag.Value), true
		}
	}

	return "", false
}
