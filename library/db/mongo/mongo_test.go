package mongo

import (
	"testing"

	"github.com/stretchr/testify/require"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
)

func TestBuildMongoURI(t *testing.T) {
	cases := []struct {
		name     string
		dialInfo DialInfo
		expect   string
	}{
		{
			name:     "no auth",
			dialInfo: DialInfo{Addr: "localhost:27017", DBName: "blog"},
			expect:   "mongodb://localhost:27017/blog",
		},
		{
			name:     "with auth",
			dialInfo: DialInfo{Addr: "localhost:27017", DBName: "blog", User: "u", Pwd: "p"},
			expect:   "mongodb://u:p@localhost:27017/blog",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, buildMongoURI(tc.dialInfo))
		})
	}
}

func TestNotFound(t *testing.T) {
	require.True(t, NotFound(mongoLib.ErrNoDocuments))
	require.False(t, NotFound(nil))
}

func TestIsDup(t *testing.T) {
	dup := mongoLib.WriteException{WriteErrors: []mongoLib.WriteError{{Code: 11000}}}
	require.True(t, IsDup(dup))
	require.False(t, IsDup(mongoLib.ErrNoDocuments))
}
