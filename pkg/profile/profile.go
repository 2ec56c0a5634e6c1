// Package profile holds the profile data model and the extraction of that
// model from a GitHub profile page.
package profile

// Key names a profile field.
type Key string

const (
	KeyName       Key = "name"
	KeyUsername   Key = "username"
	KeyReposCount Key = "repos-count"
	KeyFollowers  Key = "followers"
	KeyFollowing  Key = "following"
	KeyLocation   Key = "location"
	KeyBio        Key = "bio"
)

// Keys lists every field in display order. Templates receive their values
// in exactly this order.
var Keys = []Key{
	KeyName,
	KeyUsername,
	KeyReposCount,
	KeyFollowers,
	KeyFollowing,
	KeyLocation,
	KeyBio,
}

// NotFound is shown in place of a field whose extracted text is empty.
const NotFound = "not found"

var placeholders = map[Key]string{
	KeyName:       "Name not found!",
	KeyUsername:   "Username not found!",
	KeyReposCount: "Repos count not found!",
	KeyFollowers:  "Followers count not found!",
	KeyFollowing:  "Following count not found!",
	KeyLocation:   "Location not found!",
	KeyBio:        "Bio not found!",
}

// Placeholder returns the text substituted for a field missing from the page.
func Placeholder(k Key) string {
	return placeholders[k]
}

// Field is a single extracted value. Found is false when the page had no
// matching element, in which case Value is empty.
type Field struct {
	Key   Key
	Value string
	Found bool
}

// Found returns a field holding text taken from the page.
func Found(k Key, value string) Field {
	return Field{Key: k, Value: value, Found: true}
}

// Missing returns a field for an element the page did not contain.
func Missing(k Key) Field {
	return Field{Key: k}
}

// String returns the extracted text, or the field's placeholder on a miss.
func (f Field) String() string {
	if !f.Found {
		return Placeholder(f.Key)
	}
	return f.Value
}

// Profile is the data extracted from one profile page. It is built once per
// run and never modified afterwards.
type Profile struct {
	Name       Field
	Username   Field
	ReposCount Field
	Followers  Field
	Following  Field
	Location   Field
	Bio        Field
}

// Fields returns the fields in display order.
func (p Profile) Fields() []Field {
	return []Field{p.Name, p.Username, p.ReposCount, p.Followers, p.Following, p.Location, p.Bio}
}

// Values returns every field resolved to text, in display order.
func (p Profile) Values() []string {
	fields := p.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}
	return out
}

// Map returns every field keyed by name. All keys are always present.
func (p Profile) Map() map[Key]string {
	m := make(map[Key]string, len(Keys))
	for _, f := range p.Fields() {
		m[f.Key] = f.String()
	}
	return m
}

// Display returns the values used for rendering: each resolved value, with
// empty text replaced by NotFound.
func (p Profile) Display() []string {
	values := p.Values()
	for i, v := range values {
		if v == "" {
			values[i] = NotFound
		}
	}
	return values
}
