package pokeapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/creature-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "stats": [
    {"base_stat": 35, "effort": 0, "stat": {"name": "hp", "url": ""}},
    {"base_stat": 55, "effort": 0, "stat": {"name": "attack", "url": ""}},
    {"base_stat": 40, "effort": 0, "stat": {"name": "defense", "url": ""}},
    {"base_stat": 50, "effort": 0, "stat": {"name": "special-attack", "url": ""}},
    {"base_stat": 50, "effort": 0, "stat": {"name": "special-defense", "url": ""}},
    {"base_stat": 90, "effort": 2, "stat": {"name": "speed", "url": ""}}
  ]
}`

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mux      *http.ServeMux
	client   pokeapi.Client
	ctx      context.Context
	requests []string
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = nil
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r.URL.RequestURI())
		s.mux.ServeHTTP(w, r)
	}))
	s.ctx = context.Background()

	client, err := pokeapi.New(&pokeapi.Config{BaseURL: s.server.URL + "/api/v2", HTTPTimeout: time.Second})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestConfigValidation() {
	_, err := pokeapi.New(&pokeapi.Config{BaseURL: "not a url", HTTPTimeout: -time.Second})
	s.Require().Error(err)
	s.Contains(err.Error(), "BaseURL: is invalid")
	s.Contains(err.Error(), "HTTPTimeout: is invalid")

	_, err = pokeapi.New(nil)
	s.NoError(err)
}

func (s *ClientTestSuite) TestGetCreatureNormalizesName() {
	s.mux.HandleFunc("/api/v2/pokemon/pikachu", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(pikachuJSON))
	})

	record, err := s.client.GetCreature(s.ctx, "  PikaChu ")
	s.Require().NoError(err)

	s.Equal([]string{"/api/v2/pokemon/pikachu"}, s.requests)
	s.Equal(25, record.ID)
	s.Equal("pikachu", record.Name)
	s.Require().Len(record.Stats, 6)
	s.Equal("hp", record.Stats[0].Name)
	s.Equal(json.Number("35"), record.Stats[0].BaseStat)
	s.Equal("speed", record.Stats[5].Name)
	s.Equal(json.Number("90"), record.Stats[5].BaseStat)
}

func (s *ClientTestSuite) TestGetCreatureByID() {
	s.mux.HandleFunc("/api/v2/pokemon/25", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(pikachuJSON))
	})

	record, err := s.client.GetCreatureByID(s.ctx, 25)
	s.Require().NoError(err)
	s.Equal("pikachu", record.Name)

	_, err = s.client.GetCreatureByID(s.ctx, 0)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestGetCreatureEmptyName() {
	_, err := s.client.GetCreature(s.ctx, "   ")
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.requests)
}

func (s *ClientTestSuite) TestGetCreatureNotFound() {
	_, err := s.client.GetCreature(s.ctx, "missingno")

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "missingno")
}

func (s *ClientTestSuite) TestGetCreatureServerError() {
	s.mux.HandleFunc("/api/v2/pokemon/pikachu", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := s.client.GetCreature(s.ctx, "pikachu")
	s.True(errors.IsUnavailable(err))
	s.Equal(http.StatusBadGateway, errors.GetMeta(err)["status"])
}

func (s *ClientTestSuite) TestGetCreatureMalformedBody() {
	s.mux.HandleFunc("/api/v2/pokemon/pikachu", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 25, "stats": [`))
	})

	_, err := s.client.GetCreature(s.ctx, "pikachu")
	s.True(errors.IsDataFormat(err))
}

func (s *ClientTestSuite) TestGetCreatureUnreachable() {
	s.server.Close()

	_, err := s.client.GetCreature(s.ctx, "pikachu")
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestListCreatures() {
	s.mux.HandleFunc("/api/v2/pokemon", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("20", r.URL.Query().Get("limit"))
		s.Equal("40", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`{"count": 1302, "results": [{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"}]}`))
	})

	page, err := s.client.ListCreatures(s.ctx, 20, 40)
	s.Require().NoError(err)
	s.Equal(1302, page.Count)
	s.Require().Len(page.Results, 1)
	s.Equal("bulbasaur", page.Results[0].Name)

	_, err = s.client.ListCreatures(s.ctx, 0, 0)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.client.ListCreatures(s.ctx, 10, -1)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestSearchCreatures() {
	s.mux.HandleFunc("/api/v2/pokemon", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(fmt.Sprint(pokeapi.SearchLimit), r.URL.Query().Get("limit"))
		names := []string{"pikachu", "raichu", "pichu", "bulbasaur"}
		results := make([]string, 0, len(names))
		for _, name := range names {
			results = append(results, fmt.Sprintf(`{"name": %q, "url": ""}`, name))
		}
		_, _ = fmt.Fprintf(w, `{"count": %d, "results": [%s]}`, len(names), strings.Join(results, ","))
	})

	matches, err := s.client.SearchCreatures(s.ctx, " CHU ")
	s.Require().NoError(err)

	found := make([]string, 0, len(matches))
	for _, ref := range matches {
		found = append(found, ref.Name)
	}
	s.Equal([]string{"pikachu", "raichu", "pichu"}, found)

	_, err = s.client.SearchCreatures(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}
