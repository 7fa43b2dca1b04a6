package members

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/firstweek/internal/server/models"
	"github.com/redis/go-redis/v9"
)

// RedisRepository stores each member in a hash keyed "<prefix>:member:<id>".
// A sorted set lists the ids, zero-padded with a constant score so the
// lexicographic order is the numeric one. Ids come from an INCR counter,
// so they are never reused.
type RedisRepository struct {
	rdb    redis.UniversalClient
	prefix string
}

// redisUpdateAttempts bounds how often an update is retried after a
// concurrent write to the same member aborted it.
const redisUpdateAttempts = 3

func NewRedisRepository(rdb redis.UniversalClient, prefix string) *RedisRepository {
	return &RedisRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisRepository) seqKey() string   { return r.prefix + ":members:seq" }
func (r *RedisRepository) indexKey() string { return r.prefix + ":members" }

func (r *RedisRepository) memberKey(id int64) string {
	return r.prefix + ":member:" + strconv.FormatInt(id, 10)
}

// indexMember pads id to the width of MaxInt64.
func indexMember(id int64) string {
	return fmt.Sprintf("%019d", id)
}

func (r *RedisRepository) Save(ctx context.Context, member *models.Member) (*models.Member, error) {
	if !member.IsNew() {
		updated, err := r.update(ctx, member)
		if err != nil {
			return nil, err
		}
		if updated {
			return member, nil
		}
	}

	id, err := r.rdb.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	member.ID = id

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		r.queueWrite(ctx, pipe, member)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	return member, nil
}

// update rewrites an existing member while watching its key, so a delete
// landing between the existence check and the write aborts the write.
// It reports false when the member does not exist.
func (r *RedisRepository) update(ctx context.Context, member *models.Member) (bool, error) {
	key := r.memberKey(member.ID)

	for range redisUpdateAttempts {
		updated := false
		err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
			n, err := tx.Exists(ctx, key).Result()
			if err != nil || n == 0 {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				r.queueWrite(ctx, pipe, member)
				return nil
			})
			updated = err == nil
			return err
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("redis error: %w", err)
		}
		return updated, nil
	}

	return false, fmt.Errorf("redis error: %w", redis.TxFailedErr)
}

func (r *RedisRepository) queueWrite(ctx context.Context, pipe redis.Pipeliner, m *models.Member) {
	pipe.HSet(ctx, r.memberKey(m.ID), "id", m.ID, "name", m.Name, "email", m.Email)
	pipe.ZAdd(ctx, r.indexKey(), redis.Z{Score: 0, Member: indexMember(m.ID)})
}

func (r *RedisRepository) FindByID(ctx context.Context, id int64) (*models.Member, bool, error) {
	fields, err := r.rdb.HGetAll(ctx, r.memberKey(id)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis error: %w", err)
	}
	if len(fields) == 0 {
		return nil, false, nil
	}
	return &models.Member{ID: id, Name: fields["name"], Email: fields["email"]}, true, nil
}

func (r *RedisRepository) FindAll(ctx context.Context) ([]models.Member, error) {
	ids, err := r.rdb.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}

	result := make([]models.Member, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	parsed := make([]int64, len(ids))
	_, err = r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, s := range ids {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return fmt.Errorf("bad member id %q in index: %w", s, err)
			}
			parsed[i] = id
			cmds[i] = pipe.HGetAll(ctx, r.memberKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}

	for i, cmd := range cmds {
		fields := cmd.Val()
		// index entry left behind by an interrupted delete
		if len(fields) == 0 {
			continue
		}
		result = append(result, models.Member{ID: parsed[i], Name: fields["name"], Email: fields["email"]})
	}
	return result, nil
}

func (r *RedisRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.memberKey(id))
		pipe.ZRem(ctx, r.indexKey(), indexMember(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}
