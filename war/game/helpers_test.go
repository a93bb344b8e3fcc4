package game_test

import (
	"github.com/ratel-online/war/war/card"
	"github.com/ratel-online/war/war/card/suit"
	"github.com/ratel-online/war/war/game"
)

type noShuffle struct{}

func (noShuffle) Shuffle(int, func(i, j int)) {}

func cardsOf(ranks ...card.Rank) []*card.Card {
	cards := make([]*card.Card, 0, len(ranks))
	for i, rank := range ranks {
		cards = append(cards, card.NewCard(suit.All[i%len(suit.All)], rank))
	}
	return cards
}

func playerWith(name string, ranks ...card.Rank) *game.Player {
	player := game.NewPlayer(name)
	player.AddCards(cardsOf(ranks...))
	return player
}

func stackedGame(player1, player2 *game.Player, opts ...game.Option) *game.Game {
	opts = append([]game.Option{game.WithShuffler(noShuffle{})}, opts...)
	return game.New(player1, player2, game.NewDeckOf(), opts...)
}

func ranksOf(cards []*card.Card) []card.Rank {
	ranks := make([]card.Rank, 0, len(cards))
	for _, c := range cards {
		ranks = append(ranks, c.Rank())
	}
	return ranks
}
