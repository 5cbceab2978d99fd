package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "gets the status of a game running on a snake server",
	Args: func(c *cobra.Command, args []string) error {
		if len(gameID) == 0 {
			return errors.New("game id is required")
		}
		return nil
	},
	RunE: func(*cobra.Command, []string) error {
		sr, err := getStatus(gameID)
		if err != nil {
			return err
		}
		spew.Dump(sr)
		return nil
	},
}

var (
	gameID string
)

func init() {
	statusCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to get the status of")
	statusCmd.Flags().StringVar(&apiAddr, "api-addr", apiAddr, "address of the snake server")
}

func getStatus(id string) (*api.StatusResponse, error) {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("%s/games/%s", apiAddr, id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status: %s: %s", resp.Status, data)
	}

	sr := &api.StatusResponse{}
	err = json.Unmarshal(data, sr)
	if err != nil {
		log.WithFields(log.Fields{
			"resp": string(data),
			"id":   id,
		}).Info("unable to unmarshal status response")
		return nil, err
	}

	return sr, nil
}
