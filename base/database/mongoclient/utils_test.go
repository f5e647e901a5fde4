package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lotmarket/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableOffer struct {
		IsSelling *bool  `bson:"isSelling,omitempty"`
		Price     string `bson:"price"`
		Seller    string `bson:"seller"`
	}

	patchable := &PatchableOffer{}
	patchable.IsSelling = ptr.Bool(false)
	patchable.Price = "200"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"isSelling": false,
			// field seller is empty, so ignore
			"price": "200",
		},
		updater,
	)
}
