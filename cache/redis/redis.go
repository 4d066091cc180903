package redis

import (
	"errors"
	"fmt"

	"github.com/gomodule/redigo/redis"

	C "brokerbase/config"
)

// Key - Structured cache key, scoped by project.
type Key struct {
	ProjectID int64
	// Prefix - Helps better grouping and searching
	// i.e table_name + index_name
	Prefix string
	// Suffix - optional
	Suffix string
}

var (
	ErrorInvalidProject = errors.New("invalid key project")
	ErrorInvalidPrefix  = errors.New("invalid key prefix")
	ErrorKeyNotExists   = errors.New("key does not exist")
)

func NewKey(projectID int64, prefix string, suffix string) (*Key, error) {
	if projectID == 0 {
		return nil, ErrorInvalidProject
	}

	if prefix == "" {
		return nil, ErrorInvalidPrefix
	}

	return &Key{ProjectID: projectID, Prefix: prefix, Suffix: suffix}, nil
}

// NewKeyWithOnlyPrefix - Key without project scope, for process-wide
// counters (rate-limit windows key by ip, not project).
func NewKeyWithOnlyPrefix(prefix string) (*Key, error) {
	if prefix == "" {
		return nil, ErrorInvalidPrefix
	}
	return &Key{Prefix: prefix}, nil
}

func (key *Key) Key() (string, error) {
	if key.Prefix == "" {
		return "", ErrorInvalidPrefix
	}

	if key.ProjectID == 0 {
		if key.Suffix == "" {
			return key.Prefix, nil
		}
		return fmt.Sprintf("%s:%s", key.Prefix, key.Suffix), nil
	}

	if key.Suffix == "" {
		return fmt.Sprintf("%s:pid:%d", key.Prefix, key.ProjectID), nil
	}
	return fmt.Sprintf("%s:pid:%d:%s", key.Prefix, key.ProjectID, key.Suffix), nil
}

func Get(key *Key) (string, error) {
	k, err := key.Key()
	if err != nil {
		return "", err
	}

	conn := C.GetServices().Redis.Get()
	defer conn.Close()

	value, err := redis.String(conn.Do("GET", k))
	if err == redis.ErrNil {
		return "", ErrorKeyNotExists
	}
	return value, err
}

func Set(key *Key, value string, expiryInSecs int) error {
	k, err := key.Key()
	if err != nil {
		return err
	}

	conn := C.GetServices().Redis.Get()
	defer conn.Close()

	if expiryInSecs > 0 {
		_, err = conn.Do("SET", k, value, "EX", expiryInSecs)
	} else {
		_, err = conn.Do("SET", k, value)
	}
	return err
}

func Del(key *Key) error {
	k, err := key.Key()
	if err != nil {
		return err
	}

	conn := C.GetServices().Redis.Get()
	defer conn.Close()

	_, err = conn.Do("DEL", k)
	return err
}

// IncrWithExpiry increments a counter and sets the window expiry when the
// counter is created. Returns the counter value after increment.
func IncrWithExpiry(key *Key, expiryInSecs int) (int64, error) {
	k, err := key.Key()
	if err != nil {
		return 0, err
	}

	conn := C.GetServices().Redis.Get()
	defer conn.Close()

	count, err := redis.Int64(conn.Do("INCR", k))
	if err != nil {
		return 0, err
	}

	// First hit of the window owns the expiry.
	if count == 1 && expiryInSecs > 0 {
		if _, err := conn.Do("EXPIRE", k, expiryInSecs); err != nil {
			return count, err
		}
	}

	return count, nil
}
