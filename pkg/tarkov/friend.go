package tarkov

import "context"

// FriendList is the friend list of the selected profile.
type FriendList struct {
	Friends      []Friend `json:"Friends"`
	Ignore       []string `json:"Ignore"`
	InIgnoreList []string `json:"InIgnoreList"`
}

type Friend struct {
	ID   string     `json:"_id"`
	Info FriendInfo `json:"Info"`
}

type FriendInfo struct {
	Nickname string `json:"Nickname"`
	Side     string `json:"Side"`
	Level    uint64 `json:"Level"`

	MemberCategory Unstable `json:"MemberCategory"`
}

// Friends returns the friend and ignore lists.
func (c *Client) Friends(ctx context.Context) (*FriendList, error) {
	return Do[FriendList](ctx, c, Request{
		URL: c.config.Endpoints.Prod + "/client/friend/list",
	})
}
