package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_String(t *testing.T) {
	assert.Equal(t, "octocat", Found(KeyUsername, "octocat").String())
	assert.Equal(t, "", Found(KeyUsername, "").String())
	assert.Equal(t, "Username not found!", Missing(KeyUsername).String())
}

func TestProfile_ValuesOrder(t *testing.T) {
	p := Profile{
		Name:       Found(KeyName, "n"),
		Username:   Found(KeyUsername, "u"),
		ReposCount: Found(KeyReposCount, "r"),
		Followers:  Found(KeyFollowers, "f1"),
		Following:  Found(KeyFollowing, "f2"),
		Location:   Found(KeyLocation, "l"),
		Bio:        Found(KeyBio, "b"),
	}

	assert.Equal(t, []string{"n", "u", "r", "f1", "f2", "l", "b"}, p.Values())

	keys := make([]Key, 0, len(Keys))
	for _, f := range p.Fields() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, Keys, keys)
}

func TestProfile_Display(t *testing.T) {
	p := Profile{
		Name:       Found(KeyName, ""),
		Username:   Found(KeyUsername, "octocat"),
		ReposCount: Missing(KeyReposCount),
		Followers:  Found(KeyFollowers, "1"),
		Following:  Found(KeyFollowing, "2"),
		Location:   Missing(KeyLocation),
		Bio:        Found(KeyBio, ""),
	}

	got := p.Display()
	assert.Equal(t, []string{
		NotFound,
		"octocat",
		"Repos count not found!",
		"1",
		"2",
		"Location not found!",
		NotFound,
	}, got)
}
