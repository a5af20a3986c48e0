package entities_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depwatch/internal/domain/entities"
)

func TestDependencyRecord_Key(t *testing.T) {
	t.Parallel()

	t.Run("should keep role flags in the identity", func(t *testing.T) {
		t.Parallel()

		// given - same package and version, different roles
		direct := entities.DependencyRecord{
			Name: "tokio", Version: semver.MustParse("1.7.1"), Direct: true,
		}
		transitive := entities.DependencyRecord{
			Name: "tokio", Version: semver.MustParse("1.7.1"),
		}

		// then
		assert.NotEqual(t, direct.Key(), transitive.Key())
	})
}

func TestDependencyKey_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b entities.DependencyKey
		want bool
	}{
		{
			"should order by name first",
			entities.DependencyKey{Name: "adler", Version: "9.9.9"},
			entities.DependencyKey{Name: "tokio", Version: "0.0.1"},
			true,
		},
		{
			"should order by version on equal names",
			entities.DependencyKey{Name: "tokio", Version: "1.7.1"},
			entities.DependencyKey{Name: "tokio", Version: "1.7.2"},
			true,
		},
		{
			"should order transitive before direct",
			entities.DependencyKey{Name: "tokio", Version: "1.7.1"},
			entities.DependencyKey{Name: "tokio", Version: "1.7.1", Direct: true},
			true,
		},
		{
			"should order non-dev before dev",
			entities.DependencyKey{Name: "tokio", Version: "1.7.1", Direct: true},
			entities.DependencyKey{Name: "tokio", Version: "1.7.1", Direct: true, Dev: true},
			true,
		},
		{
			"should not order equal keys",
			entities.DependencyKey{Name: "tokio", Version: "1.7.1"},
			entities.DependencyKey{Name: "tokio", Version: "1.7.1"},
			false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			// when / then
			assert.Equal(t, test.want, test.a.Less(test.b))
			if test.want {
				assert.False(t, test.b.Less(test.a))
			}
		})
	}
}

func TestDependencyKey_String(t *testing.T) {
	t.Parallel()

	t.Run("should render the role", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "tokio@1.7.1 (direct)",
			entities.DependencyKey{Name: "tokio", Version: "1.7.1", Direct: true}.String())
		assert.Equal(t, "tokio@1.7.1 (transitive)",
			entities.DependencyKey{Name: "tokio", Version: "1.7.1"}.String())
		assert.Equal(t, "criterion@0.3.0 (transitive,dev)",
			entities.DependencyKey{Name: "criterion", Version: "0.3.0", Dev: true}.String())
	})
}

func TestUpdateCandidate_Latest(t *testing.T) {
	t.Parallel()

	t.Run("should return the newest version", func(t *testing.T) {
		t.Parallel()

		// given
		candidate := &entities.UpdateCandidate{
			Versions: []*semver.Version{
				semver.MustParse("1.0.0"),
				semver.MustParse("1.0.1"),
			},
		}

		// when / then
		assert.Equal(t, "1.0.1", candidate.Latest().String())
	})

	t.Run("should return nil for an empty candidate", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, (&entities.UpdateCandidate{}).Latest())
	})

	t.Run("should return nil for a nil candidate", func(t *testing.T) {
		t.Parallel()

		var candidate *entities.UpdateCandidate
		assert.Nil(t, candidate.Latest())
	})
}
